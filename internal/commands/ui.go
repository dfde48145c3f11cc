package commands

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"bell-lookup/internal/infra/logx"
	"bell-lookup/internal/ui"
)

func runUI(cmd *cobra.Command, _ []string) error {
	// The view owns the terminal; logs go to debug.log or nowhere.
	logx.SetOutput(nil)
	if ro.debug || len(os.Getenv("DEBUG")) > 0 {
		f, err := tea.LogToFile("debug.log", "debug")
		if err != nil {
			return err
		}
		defer f.Close()
		logx.SetOutput(f)
		logx.SetMinLevel(logx.LevelDebug)
		fmt.Fprintln(cmd.ErrOrStderr(), "Debug logging enabled. Run 'tail -f debug.log' to view logs.")
	}

	_, src, err := openSource()
	if err != nil {
		return err
	}
	defer src.Close()

	_, err = tea.NewProgram(
		ui.New(src).WithTimeout(loadTimeout),
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	).Run()
	return err
}
