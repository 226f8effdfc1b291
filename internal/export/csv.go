// Package export writes run traces to disk.
package export

import (
	"os"

	"github.com/gocarina/gocsv"

	"github.com/anders-th/solarloop/internal/sim"
)

// WriteTraceCSV writes the per-second trace of a run to path, one row per
// sample with a header row.
func WriteTraceCSV(path string, trace []sim.Sample) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gocsv.MarshalFile(&trace, f)
}

// ReadTraceCSV loads a trace previously written by WriteTraceCSV.
func ReadTraceCSV(path string) ([]sim.Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var trace []sim.Sample
	if err := gocsv.UnmarshalFile(f, &trace); err != nil {
		return nil, err
	}
	return trace, nil
}
