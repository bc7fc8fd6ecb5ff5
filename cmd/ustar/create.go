package main

import (
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/tarforge/ustar/src/scan"
	"github.com/tarforge/ustar/src/ustar"
	"github.com/tarforge/ustar/src/util"
)

const createDescription = "Create a tar archive from a directory or file"

type createCmd struct {
	Output  string `short:"f" long:"file" required:"yes" description:"Output archive file"`
	UID     int64  `long:"uid" default:"0" description:"uid written into every header"`
	GID     int64  `long:"gid" default:"0" description:"gid written into every header"`
	Verbose bool   `short:"v" description:"Activates the verbose mode"`

	Args struct {
		Target string `positional-arg-name:"target" required:"yes" description:"Directory or file to archive"`
	} `positional-args:"yes"`
}

func (cmd *createCmd) Execute(args []string) error {
	setupLog(cmd.Verbose)

	paths, err := scan.EntryPaths(cmd.Args.Target)
	if err != nil {
		return err
	}
	baseDir := filepath.Dir(filepath.Clean(cmd.Args.Target))
	stats, err := scan.CollectStats(baseDir, paths)
	if err != nil {
		return err
	}
	buf, err := ustar.Create(baseDir, stats, ustar.OptUID(cmd.UID), ustar.OptGID(cmd.GID))
	if err != nil {
		return err
	}

	out, err := util.CreateFile(cmd.Output)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	if _, err := out.Write(buf); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"entries": len(stats),
		"bytes":   len(buf),
		"file":    cmd.Output,
	}).Debug("archive written")
	return nil
}
