package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/stylize/cmd/stylize"
	"github.com/charmbracelet/lipgloss"
)

var errorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}).
	Bold(true)

func main() {
	rootCmd := stylize.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
