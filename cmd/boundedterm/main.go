// Command boundedterm runs the whole-program termination-boundedness
// analysis over a JSONL IR dump and prints or renders the results. It
// stands in for the compiler-pass-manager integration: a real embedding
// registers the analysis under print<bounded-termination> and
// print<function-bounded-termination>; this binary is a standalone driver
// for the same core.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "analyze":
		err = cmdAnalyze(os.Args[2:])
	case "function":
		err = cmdFunction(os.Args[2:])
	case "graph":
		err = cmdGraph(os.Args[2:])
	case "help", "-h", "--help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `boundedterm — whole-program termination-boundedness analysis

Usage:
  boundedterm analyze  --in <ir.jsonl> [--json]            Run the module analyzer, print every function's verdict
  boundedterm function --in <ir.jsonl> --func <id> [--json] Run the function analyzer for one function
  boundedterm graph    --in <ir.jsonl> --out <file.dot> [--func <id>] Render a verdict-colored callgraph, or one function's CFG with --func

Flags:
  --in <path>    path to a JSONL IR dump (see internal/irjson)
  --func <id>    function identity to target
  --out <path>   output file (graph only; "-" for stdout)
  --json         emit machine-readable JSON instead of text
`)
}
