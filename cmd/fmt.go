package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown to the terminal with glamour. If rendering
// fails the raw markdown is printed instead, so reports are never lost.
func printMarkdown(md, theme string) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(0)}
	if theme == "" || theme == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(theme))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
