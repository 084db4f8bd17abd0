package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	core "github.com/alexisbeaulieu97/showcase/internal/showcase"
	tuishowcase "github.com/alexisbeaulieu97/showcase/internal/tui/showcase"
)

const fallbackWidth = 100

type renderOptions struct {
	width int
	view  string
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the showcase once",
		Long:  `Render a freshly seeded page to stdout without starting the interactive program.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, flags, opts)
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", 0, "Output width in cells; defaults to the terminal width")
	cmd.Flags().StringVar(&opts.view, "view", "showcase", "Page to render (showcase or not-found)")

	return cmd
}

func runRender(cmd *cobra.Command, flags *rootFlags, opts renderOptions) error {
	log, err := commandLogger(flags, cmd.ErrOrStderr(), "command.render")
	if err != nil {
		return err
	}

	view, err := parseView(opts.view)
	if err != nil {
		return err
	}
	if err := validateWidth(opts.width); err != nil {
		return err
	}

	page, table, err := loadPage(flags, log)
	if err != nil {
		return err
	}
	if view == core.ViewNotFound {
		page.ShowNotFound()
	}

	width := opts.width
	if width == 0 {
		width = terminalWidth()
	}

	log.WithFields(map[string]any{
		"width": width,
		"view":  view.String(),
	}).Debug("rendering showcase")

	fmt.Fprintln(cmd.OutOrStdout(), tuishowcase.Render(page, tuishowcase.Options{Logger: log, Table: table}, width))
	return nil
}

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallbackWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}
