package search

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// Report summarizes a completed run.
type Report struct {
	Operands        []float64     `json:"operands"`
	Operators       []string      `json:"operators"`
	Target          *float64      `json:"target,omitempty"`
	Tolerance       float64       `json:"tolerance"`
	Shapes          int           `json:"shapes"`
	Combinations    int           `json:"combinations"`
	Matches         int           `json:"matches"`
	Elapsed         time.Duration `json:"elapsed_ns"`
	MeanShapeSecs   float64       `json:"mean_shape_secs"`
	StdDevShapeSecs float64       `json:"stddev_shape_secs"`
}

// WriteTextReport writes the run summary in human-readable format.
func WriteTextReport(w io.Writer, r Report) {
	fmt.Fprintln(w, "========== SEARCH COMPLETE ==========")
	fmt.Fprintf(w, "Operands:     %v\n", r.Operands)
	fmt.Fprintf(w, "Operators:    %s\n", strings.Join(r.Operators, ","))
	if r.Target != nil {
		fmt.Fprintf(w, "Target:       %v (tolerance %v)\n", *r.Target, r.Tolerance)
	} else {
		fmt.Fprintf(w, "Target:       none\n")
	}
	fmt.Fprintf(w, "Shapes:       %d\n", r.Shapes)
	fmt.Fprintf(w, "Combinations: %d\n", r.Combinations)
	fmt.Fprintf(w, "Matches:      %d\n", r.Matches)
	fmt.Fprintf(w, "Elapsed:      %s\n", r.Elapsed)
	fmt.Fprintf(w, "Shape time:   mean %.6fs, stddev %.6fs\n", r.MeanShapeSecs, r.StdDevShapeSecs)
	fmt.Fprintln(w, "=====================================")
}

// WriteJSONReport writes the run summary as JSON.
func WriteJSONReport(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
