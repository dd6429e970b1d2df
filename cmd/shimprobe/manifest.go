package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/richinsley/posixshim"
)

type manifestCmd struct {
	format string
	framed bool
	out    io.Writer
}

func (*manifestCmd) Name() string     { return "manifest" }
func (*manifestCmd) Synopsis() string { return "write the compiled entry points as json or msgpack" }
func (*manifestCmd) Usage() string {
	return `manifest [-format=json|msgpack] [-framed]:
  Write a snapshot of the entry points in this build to stdout.
`
}

func (c *manifestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "json", "output format: json or msgpack")
	f.BoolVar(&c.framed, "framed", false, "prefix the document with a 4-byte big-endian length")
}

func (c *manifestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	var s posixshim.Serializer
	switch c.format {
	case "json":
		s = posixshim.JSONSerializer{Indent: "  "}
	case "msgpack":
		s = posixshim.MsgpackSerializer{}
	default:
		log.Errorf("unknown format %q", c.format)
		return subcommands.ExitUsageError
	}

	doc := posixshim.Snapshot()
	log.WithFields(logrus.Fields{
		"platform":   doc.Platform,
		"primitives": len(doc.Primitives),
		"format":     c.format,
	}).Debug("writing manifest")

	out := output(c.out)
	if c.framed {
		if err := posixshim.WriteDocument(out, s, doc); err != nil {
			log.Errorf("error writing manifest: %v", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	data, err := posixshim.EncodeDocument(s, doc)
	if err != nil {
		log.Errorf("%v", err)
		return subcommands.ExitFailure
	}
	if _, err := out.Write(data); err != nil {
		log.Errorf("error writing manifest: %v", err)
		return subcommands.ExitFailure
	}
	if c.format == "json" {
		fmt.Fprintln(out)
	}
	return subcommands.ExitSuccess
}
