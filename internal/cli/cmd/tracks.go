package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	tracksGenre    string
	tracksSearch   string
	tracksPage     int
	tracksPageSize int
)

// tracksCmd represents the tracks command
var tracksCmd = &cobra.Command{
	Use:   "tracks",
	Short: "List tracks in the catalog",
	Long:  `Query the catalog with optional genre and free-text filters.`,
	Run: func(cmd *cobra.Command, args []string) {
		listTracks()
	},
}

func init() {
	tracksCmd.Flags().StringVar(&tracksGenre, "genre", "", "filter by genre")
	tracksCmd.Flags().StringVar(&tracksSearch, "search", "", "free-text filter")
	tracksCmd.Flags().IntVar(&tracksPage, "page", 1, "page number")
	tracksCmd.Flags().IntVar(&tracksPageSize, "page-size", 10, "tracks per page (1-100)")
	rootCmd.AddCommand(tracksCmd)
}

func listTracks() {
	q := url.Values{}
	if tracksGenre != "" {
		q.Set("genre", tracksGenre)
	}
	if tracksSearch != "" {
		q.Set("search", tracksSearch)
	}
	q.Set("page", strconv.Itoa(tracksPage))
	q.Set("pageSize", strconv.Itoa(tracksPageSize))

	resp, err := http.Get(apiURL() + "/api/track?" + q.Encode())
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

	if total := resp.Header.Get("X-Total-Count"); total != "" {
		fmt.Printf("Total matching tracks: %s\n", total)
	}

	var prettyJSON bytes.Buffer
	if err := json.Indent(&prettyJSON, body, "", "  "); err == nil {
		fmt.Println(prettyJSON.String())
	} else {
		fmt.Println(string(body))
	}
}
