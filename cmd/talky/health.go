package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"talky/backend/internal/client"
)

var (
	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42")).
		Bold(true)

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the relay is running",
	RunE: func(cmd *cobra.Command, args []string) error {
		rc := client.NewRelayClient(relayURL, nil)
		resp, err := rc.Health(cmd.Context())
		if err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), failStyle.Render("✗ "+client.FriendlyError(err)))
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", okStyle.Render("✓ "+resp.Status), resp.Message, resp.Timestamp)
		return nil
	},
}
