package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"talky/backend/internal/client"
)

var chatModel string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive conversation",
	Long: `Start an interactive conversation through the relay.

Type a message and press enter. Type /quit or press Ctrl-D to leave.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		rc := client.NewRelayClient(relayURL, nil)

		if _, err := rc.Health(cmd.Context()); err != nil {
			fmt.Fprintln(out, failStyle.Render("✗ Backend server is offline. Please start the backend server first."))
		} else {
			fmt.Fprintln(out, okStyle.Render("✓ Connected to "+rc.BaseURL()))
		}

		session := client.NewSession(rc, client.NewTerminalView(out), chatModel)
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "/quit" {
				break
			}
			// Failures are already rendered by the view; keep the loop going.
			if err := session.Send(cmd.Context(), line); errors.Is(err, client.ErrBusy) {
				return err
			}
		}
		return scanner.Err()
	},
}

func init() {
	chatCmd.Flags().StringVar(&chatModel, "model", "", "Provider to use (gemini or openai); empty uses the relay default")
}
