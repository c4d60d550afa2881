package main

import (
	"flag"
	"fmt"
	"os"

	"boundedterm/internal/demangle"
	"boundedterm/internal/ir"
	"boundedterm/internal/irjson"
	"boundedterm/internal/termination"
	"boundedterm/internal/verdict"
)

func cmdAnalyze(args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	in := fs.String("in", "", "path to a JSONL IR dump")
	jsonOut := fs.Bool("json", false, "emit JSON instead of text")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("--in is required")
	}

	prog, err := irjson.Load(*in)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	fmt.Fprintf(os.Stderr, "loaded %d functions\n", len(prog.FuncOrder()))

	cg := &ir.ProgramCallGraph{Program: prog}
	dem := demangle.New()
	results := termination.AnalyzeModule(prog, cg, dem)

	if *jsonOut {
		return printJSON(os.Stdout, results, dem)
	}
	printText(os.Stdout, results, dem)
	return nil
}

func cmdFunction(args []string) error {
	fs := flag.NewFlagSet("function", flag.ExitOnError)
	in := fs.String("in", "", "path to a JSONL IR dump")
	funcID := fs.String("func", "", "function identity to analyze")
	jsonOut := fs.Bool("json", false, "emit JSON instead of text")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("--in is required")
	}
	if *funcID == "" {
		return fmt.Errorf("--func is required")
	}

	prog, err := irjson.Load(*in)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	fn, ok := prog.Functions[ir.FuncID(*funcID)]
	if !ok {
		return fmt.Errorf("function %q not found in %s", *funcID, *in)
	}

	res := termination.AnalyzeFunction(fn)
	dem := demangle.New()
	single := map[ir.FuncID]verdict.Result{fn.ID(): res}

	if *jsonOut {
		return printJSON(os.Stdout, single, dem)
	}
	printText(os.Stdout, single, dem)
	return nil
}
