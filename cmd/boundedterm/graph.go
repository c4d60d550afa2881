package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"boundedterm/internal/callgraph"
	"boundedterm/internal/demangle"
	"boundedterm/internal/ir"
	"boundedterm/internal/irjson"
	"boundedterm/internal/render"
	"boundedterm/internal/termination"
)

func cmdGraph(args []string) error {
	fs := flag.NewFlagSet("graph", flag.ExitOnError)
	in := fs.String("in", "", "path to a JSONL IR dump")
	out := fs.String("out", "-", "output path for the rendered file (\"-\" for stdout)")
	funcID := fs.String("func", "", "render one function's CFG instead of the whole-program callgraph")
	title := fs.String("title", "", "graph title (defaults to the input path)")
	jsonOut := fs.Bool("json", false, "emit the call graph's node/edge structure as JSON instead of DOT (whole-program only)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("--in is required")
	}
	if *title == "" {
		*title = *in
	}

	prog, err := irjson.Load(*in)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	dem := demangle.New()

	if *jsonOut {
		if *funcID != "" {
			return fmt.Errorf("--json is only supported for the whole-program callgraph, not --func")
		}
		g := callgraph.BuildGraph(prog)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(g)
	}

	var dot string
	if *funcID != "" {
		fn, ok := prog.Functions[ir.FuncID(*funcID)]
		if !ok {
			return fmt.Errorf("function %q not found in %s", *funcID, *in)
		}
		blockResults := termination.BlockResults(fn)
		dot = render.CFGDOT(fn, blockResults, render.NASA)
	} else {
		cg := &ir.ProgramCallGraph{Program: prog}
		results := termination.AnalyzeModule(prog, cg, dem)
		dot = render.CallgraphDOT(prog, results, dem, *title, render.NASA)
	}

	if *out == "-" {
		_, err := fmt.Fprint(os.Stdout, dot)
		return err
	}
	return os.WriteFile(*out, []byte(dot), 0o644)
}
