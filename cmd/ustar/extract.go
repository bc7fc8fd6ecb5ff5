package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/tarforge/ustar/src/ustar"
)

const extractDescription = "Extract a tar archive into a directory"

type extractCmd struct {
	Input   string `short:"f" long:"file" required:"yes" description:"Archive file to extract"`
	Dest    string `short:"C" long:"directory" default:"." description:"Destination directory"`
	Verbose bool   `short:"v" description:"Activates the verbose mode"`
}

func (cmd *extractCmd) Execute(args []string) error {
	setupLog(cmd.Verbose)

	buf, err := os.ReadFile(cmd.Input)
	if err != nil {
		return err
	}
	if err := ustar.Extract(buf, cmd.Dest); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"file": cmd.Input,
		"dest": cmd.Dest,
	}).Debug("archive extracted")
	return nil
}
