package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"
)

// tokenCmd represents the token command
var tokenCmd = &cobra.Command{
	Use:   "token [user-id]",
	Short: "Fetch a bearer token for a user",
	Long:  `Exchange a user id for a signed bearer token via the running API.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fetchToken(args[0])
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}

func fetchToken(userID string) {
	payload := map[string]string{"user_id": userID}
	jsonData, _ := json.Marshal(payload)

	resp, err := http.Post(apiURL()+"/auth/token", "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		fmt.Printf("Error sending request: %v\n", err)
		return
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Error (%d): %s\n", resp.StatusCode, string(body))
		return
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		fmt.Printf("Error decoding response: %v\n", err)
		return
	}

	fmt.Println(out.Token)
	fmt.Println("\nTip: export UPPBEAT_TOKEN=<token> to use it with other commands.")
}
