package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/stylize/cmd/stylize"
	"github.com/arthur-debert/stylize/internal/version"
	"github.com/spf13/cobra/doc"
)

func main() {
	rootCmd := stylize.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "STYLIZE",
		Section: "1",
		Source:  "stylize " + version.Version,
		Manual:  "stylize manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
