//go:build (darwin || linux) && cgo

package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/ebitengine/purego"
	"github.com/google/subcommands"

	"github.com/richinsley/posixshim"
)

func init() {
	platformCommands = append(platformCommands, &lookupCmd{})
}

type lookupCmd struct {
	scope string
	out   io.Writer
}

func (*lookupCmd) Name() string     { return "lookup" }
func (*lookupCmd) Synopsis() string { return "resolve symbols through RTLD_DEFAULT or RTLD_NEXT" }
func (*lookupCmd) Usage() string {
	return `lookup [-scope=default|next] <symbol>...:
  Resolve each symbol with dlsym using the selected search sentinel.
`
}

func (c *lookupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.scope, "scope", "default", "search scope: default or next")
}

func scopeHandle(scope string) (posixshim.Handle, error) {
	switch scope {
	case "default":
		return posixshim.Default(), nil
	case "next":
		return posixshim.Next(), nil
	}
	return 0, fmt.Errorf("unknown scope %q", scope)
}

func (c *lookupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	h, err := scopeHandle(c.scope)
	if err != nil {
		log.Errorf("%v", err)
		return subcommands.ExitUsageError
	}
	log.Debugf("resolving %d symbols with handle %s", f.NArg(), h)

	status := subcommands.ExitSuccess
	out := output(c.out)
	for _, sym := range f.Args() {
		addr, err := purego.Dlsym(uintptr(h), sym)
		if err != nil {
			log.WithField("symbol", sym).Errorf("dlsym failed: %v", err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Fprintf(out, "%s\t%#x\n", sym, addr)
	}
	return status
}
