// Command shimprobe reports the entry points compiled into posixshim on this
// platform and resolves symbols through its dlfcn sentinels.
package main

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// platformCommands holds commands that only exist on some builds; see lookup.go.
var platformCommands []subcommands.Command

func main() {
	log.Out = os.Stderr
	log.Formatter = &logrus.TextFormatter{DisableTimestamp: true}

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&manifestCmd{}, "")
	subcommands.Register(&sentinelsCmd{}, "")
	for _, c := range platformCommands {
		subcommands.Register(c, "")
	}

	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()
	if *debug {
		log.SetLevel(logrus.DebugLevel)
	}

	os.Exit(int(subcommands.Execute(context.Background())))
}

func output(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
