package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	tuishowcase "github.com/alexisbeaulieu97/showcase/internal/tui/showcase"
)

func runShowcase(cmd *cobra.Command, flags *rootFlags) error {
	log, closer, err := fileLogger(flags)
	if err != nil {
		return err
	}
	defer closer.Close()

	page, table, err := loadPage(flags, log)
	if err != nil {
		log.Error(err, "showcase failed to start")
		return err
	}

	m := tuishowcase.NewModel(page, tuishowcase.Options{Logger: log, Table: table})
	defer m.Close()

	log.Info("launching showcase")

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		log.Error(err, "showcase execution failed")
		return fmt.Errorf("failed to run showcase: %w", err)
	}

	log.Info("showcase closed")
	return nil
}
