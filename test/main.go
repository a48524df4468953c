package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/chriso345/clifford"
)

type CLIArgs struct {
	clifford.Clifford `name:"app"`
	clifford.Help
	clifford.Version `version:"0.1.0"`
	clifford.Desc    `desc:"An example application demonstrating clifford features"`

	Debug clifford.Arg[bool] `short:"d" long:"debug" desc:"Trace argument decoding"`

	Serve struct {
		clifford.Subcommand `name:"server"`
		clifford.Desc       `desc:"Start the server"`

		Port    clifford.Arg[int]                   `long:"port" default:"8080" desc:"Port to run the server on"`
		Verbose clifford.Arg[bool]                  `short:"v" long:"verbose" desc:"Enable verbose output"`
		Allow   clifford.Arg[clifford.List[string]] `long:"allow" desc:"Allowed origin, may be repeated"`
		Token   clifford.Arg[string]                `long:"token" required:"true" secret:"true" desc:"API token"`
	}
}

func main() {
	args := &CLIArgs{}

	var opts []clifford.Option
	for _, a := range os.Args[1:] {
		if a == "-d" || a == "--debug" {
			logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "clifford", Level: log.DebugLevel})
			opts = append(opts, clifford.WithLogger(logger))
			break
		}
	}

	if err := clifford.Parse(args, opts...); err != nil {
		fmt.Fprintln(os.Stderr, "Error parsing arguments:", err)
		os.Exit(1)
	}

	if args.Serve.Subcommand {
		fmt.Printf("Serving on :%d (verbose=%t, origins=%v)\n",
			args.Serve.Port.Value(), args.Serve.Verbose.Value(), args.Serve.Allow.Value())
	}
}
