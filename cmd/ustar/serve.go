package main

import (
	"github.com/sirupsen/logrus"

	"github.com/tarforge/ustar/src/serve"
)

const serveDescription = "Serve tar archives of a directory's sub-directories over HTTP"

type serveCmd struct {
	Address string `short:"a" long:"address" default:"localhost:8080" description:"Address to listen on"`
	Prefix  string `long:"prefix" default:"/" description:"URL prefix to serve under"`
	Dir     string `short:"d" long:"directory" default:"." description:"Directory whose sub-directories are served"`
	Verbose bool   `short:"v" description:"Activates the verbose mode"`
}

func (cmd *serveCmd) Execute(args []string) error {
	setupLog(cmd.Verbose)

	logrus.WithFields(logrus.Fields{
		"address": cmd.Address,
		"dir":     cmd.Dir,
	}).Info("serving tar archives")
	return serve.Serve(cmd.Address, cmd.Prefix, cmd.Dir)
}
