package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"precip-viewer/internal/controllers/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Show today's forecast interactively; press w for the 5-day forecast",
	RunE:  runView,
}

var printWeek bool

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Load the forecast once and print the rendered view",
	RunE:  runPrint,
}

func init() {
	printCmd.Flags().BoolVar(&printWeek, "week", false, "also load and print the 5-day forecast")
}

func runView(cmd *cobra.Command, _ []string) error {
	e, err := bootstrap(false)
	if err != nil {
		return err
	}
	defer e.Close()

	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	ctrl := tui.NewController(ctx, e.providerRepository(), e.l, e.cnf.App.Region)
	defer ctrl.Close()

	e.l.Info("starting viewer", map[string]any{"provider": e.cnf.Provider.BaseURL})

	p := tea.NewProgram(ctrl, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return errors.Wrap(err, "run viewer")
	}

	return nil
}

func runPrint(cmd *cobra.Command, _ []string) error {
	e, err := bootstrap(false)
	if err != nil {
		return err
	}
	defer e.Close()

	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	ctrl := tui.NewController(ctx, e.providerRepository(), e.l, e.cnf.App.Region)
	defer ctrl.Close()

	ctrl.Settle(ctrl.Init())
	if printWeek {
		ctrl.Settle(ctrl.LoadWeek())
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), ctrl.View())
	return err
}
