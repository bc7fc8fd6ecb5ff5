package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
)

const name = "ustar"

func main() {
	parser := flags.NewNamedParser(name, flags.Default)

	parser.AddCommand("create", createDescription, createDescription, &createCmd{})
	parser.AddCommand("extract", extractDescription, extractDescription, &extractCmd{})
	parser.AddCommand("list", listDescription, listDescription, &listCmd{})
	parser.AddCommand("serve", serveDescription, serveDescription, &serveCmd{})

	if _, err := parser.Parse(); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrCommandRequired {
			parser.WriteHelp(os.Stdout)
		}
		os.Exit(1)
	}
}

func setupLog(verbose bool) {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
}
