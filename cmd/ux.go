package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7"))
	styleOK    = lipgloss.NewStyle().Foreground(lipgloss.Color("#2CD7C7"))
	styleError = lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C"))
)

func printTitle(msg string) { fmt.Println(styleTitle.Render(msg)) }

func printOK(msg string) { fmt.Println(styleOK.Render(msg)) }

func printError(err error) {
	fmt.Fprintln(os.Stderr, styleError.Render("Error: "+err.Error()))
}
