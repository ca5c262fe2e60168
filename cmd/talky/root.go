package main

import (
	"github.com/spf13/cobra"

	"talky/backend/internal/client"
)

var relayURL string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "talky",
	Short: "Terminal client for the talky chat relay",
	Long: `Chat with Gemini or OpenAI through the talky relay backend.

The relay keeps provider API keys on the server; this client only ever
talks to the relay.

Quick Start:
  talky health                 # Check that the relay is running
  talky chat                   # Start a conversation with the default provider
  talky chat --model openai    # Use OpenAI instead`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&relayURL, "url", client.DefaultBaseURL, "Base URL of the relay backend")
	rootCmd.AddCommand(chatCmd, healthCmd)
}
