package main

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed guide.md
var guide string

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Render the usage guide",
	RunE: func(_ *cobra.Command, _ []string) error {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			return err
		}
		out, err := r.Render(guide)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}
