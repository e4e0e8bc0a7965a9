package main

import (
	"fmt"

	"webtools/internal/tui"
	"webtools/internal/viewmodel"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICmd(a *app) *cobra.Command {
	var saveDir string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Interactive Encode/Decode and QR screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := a.qrService()
			store := viewmodel.NewStore(svc, svc)

			p := tea.NewProgram(
				tui.New(cmd.Context(), store, saveDir),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("tui: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&saveDir, "output", "o", ".", "Directory for saved QR codes")
	return cmd
}
