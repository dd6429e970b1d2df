package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/richinsley/posixshim"
)

type sentinelsCmd struct {
	out io.Writer
}

func (*sentinelsCmd) Name() string     { return "sentinels" }
func (*sentinelsCmd) Synopsis() string { return "print dlfcn sentinel and flag values" }
func (*sentinelsCmd) Usage() string {
	return `sentinels:
  Print every sentinel and flag compiled into this build with its bit pattern.
`
}

func (*sentinelsCmd) SetFlags(*flag.FlagSet) {}

func (c *sentinelsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	tw := tabwriter.NewWriter(output(c.out), 0, 4, 2, ' ', 0)
	n := 0
	for _, p := range posixshim.Manifest() {
		v, ok := p.Value()
		if !ok {
			continue
		}
		fmt.Fprintf(tw, "%s\t%#x\t%s\n", p.Name, v, p.Exposed)
		n++
	}
	if err := tw.Flush(); err != nil {
		log.Errorf("error writing sentinels: %v", err)
		return subcommands.ExitFailure
	}

	if n == 0 {
		log.Warnf("no sentinels compiled into this %s build", posixshim.CurrentPlatform)
	}
	return subcommands.ExitSuccess
}
