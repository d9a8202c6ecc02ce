package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "uppbeat",
	Short: "CLI client for the Uppbeat track catalog",
	Long:  "Talk to a running Uppbeat API instance from the terminal.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Hi! I'm the Uppbeat CLI. Try 'uppbeat help'")
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func apiURL() string {
	if url := os.Getenv("UPPBEAT_API_URL"); url != "" {
		return url
	}
	return "http://localhost:8080"
}
