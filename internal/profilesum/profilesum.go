// Package profilesum summarizes a pprof CPU profile captured via
// runtime/pprof, independent of the stdlib tool used to record it.
package profilesum

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/google/pprof/profile"
)

type sample struct {
	name  string
	value int64
}

// PrintTop parses the pprof profile at path and writes its top n functions
// by self (flat) sample value to w.
func PrintTop(w io.Writer, path string, n int) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	p, err := profile.Parse(f)
	if err != nil {
		return fmt.Errorf("profilesum: parse %s: %w", path, err)
	}

	totals := make(map[string]int64)
	for _, s := range p.Sample {
		if len(s.Value) == 0 || len(s.Location) == 0 {
			continue
		}
		loc := s.Location[0]
		for _, line := range loc.Line {
			if line.Function == nil {
				continue
			}
			totals[line.Function.Name] += s.Value[0]
			break
		}
	}

	samples := make([]sample, 0, len(totals))
	for name, v := range totals {
		samples = append(samples, sample{name: name, value: v})
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i].value > samples[j].value })

	if n > len(samples) {
		n = len(samples)
	}
	for _, s := range samples[:n] {
		fmt.Fprintf(w, "%10d  %s\n", s.value, s.name)
	}
	return nil
}
