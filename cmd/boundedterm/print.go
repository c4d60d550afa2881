package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"boundedterm/internal/ir"
	"boundedterm/internal/verdict"
)

// functionReport is the JSON shape for one function's verdict.
type functionReport struct {
	Function    string `json:"function"`
	Result      string `json:"result"`
	Explanation string `json:"explanation"`
}

// printText writes one paragraph per function, in the format:
//
//	Function name: <demangled>
//	Result: <Unevaluated|Bounded|Unbounded|Unknown>
//	Explanation: <string>
func printText(w io.Writer, results map[ir.FuncID]verdict.Result, dem ir.Demangler) {
	for _, id := range sortedFuncIDs(results) {
		res := results[id]
		fmt.Fprintf(w, "Function name: %s\n", dem.Demangle(string(id)))
		fmt.Fprintf(w, "Result: %s\n", res.Verdict)
		fmt.Fprintf(w, "Explanation: %s\n\n", res.Explanation)
	}
}

// printJSON writes one functionReport per function, as a JSON array sorted
// by function identity for byte-identical output across runs.
func printJSON(w io.Writer, results map[ir.FuncID]verdict.Result, dem ir.Demangler) error {
	reports := make([]functionReport, 0, len(results))
	for _, id := range sortedFuncIDs(results) {
		res := results[id]
		reports = append(reports, functionReport{
			Function:    dem.Demangle(string(id)),
			Result:      res.Verdict.String(),
			Explanation: res.Explanation,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

func sortedFuncIDs(results map[ir.FuncID]verdict.Result) []ir.FuncID {
	ids := make([]ir.FuncID, 0, len(results))
	for id := range results {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
