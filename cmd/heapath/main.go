// Command heapath solves shortest-path fixtures, heap-sorts numbers and
// serves a stored graph catalog over HTTP.
//
//	heapath solve  [-f graph.yaml] [-source A] [-target C]
//	heapath sort   [-desc] 5 3 9 1
//	heapath import -db ./heapathDB graphs/*.yaml
//	heapath serve  [-listen :5000] [-db ./heapathDB] [-memory]
//	heapath sample
//
// glog flags (-v, -logtostderr, ...) go before the subcommand.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
)

type command struct {
	name  string
	usage string
	run   func(args []string) error
}

var commands = []command{
	{"solve", "print adjacency views and Dijkstra results for a fixture", runSolve},
	{"sort", "heap sort numbers", runSort},
	{"import", "load fixture files into the snapshot store", runImport},
	{"serve", "serve the graph catalog over HTTP", runServe},
	{"sample", "print the built-in demo fixture as YAML", runSample},
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [glog flags] <command> [flags]\n\ncommands:\n", os.Args[0])
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "  %-7s %s\n", c.name, c.usage)
	}
}

func main() {
	flag.Usage = usage
	flag.Parse()
	defer glog.Flush()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	name, args := flag.Arg(0), flag.Args()[1:]
	for _, c := range commands {
		if c.name != name {
			continue
		}
		if err := c.run(args); err != nil {
			glog.Errorf("%s: %v", name, err)
			glog.Flush()
			fmt.Fprintf(os.Stderr, "heapath %s: %v\n", name, err)
			os.Exit(1)
		}
		return
	}

	fmt.Fprintf(os.Stderr, "heapath: unknown command %q\n", name)
	usage()
	os.Exit(2)
}
