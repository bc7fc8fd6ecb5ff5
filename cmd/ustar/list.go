package main

import (
	"fmt"
	"os"
	"time"

	"github.com/tarforge/ustar/src/ustar"
)

const listDescription = "List the entries of a tar archive"

type listCmd struct {
	Input string `short:"f" long:"file" required:"yes" description:"Archive file to list"`
}

func (cmd *listCmd) Execute(args []string) error {
	buf, err := os.ReadFile(cmd.Input)
	if err != nil {
		return err
	}
	headers, err := ustar.ReadHeaders(buf)
	if err != nil {
		return err
	}
	for i := range headers {
		hdr := &headers[i]
		mtime := time.Unix(hdr.ModTime, 0).UTC().Format("2006-01-02 15:04:05")
		fmt.Printf("%c %10d %s %s\n", hdr.Typeflag, hdr.Size, mtime, hdr.Path())
	}
	return nil
}
