package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/pprof/profile"
)

// profileSummary is the short report printed after a profiled bench run.
type profileSummary struct {
	Samples int64         // number of CPU samples
	CPU     time.Duration // total sampled CPU time
	Top     []funcCost    // hottest leaf functions, most expensive first
}

// funcCost is the flat (self) CPU time of one function.
type funcCost struct {
	Name string
	Flat time.Duration
}

// topFuncs is how many functions the summary lists.
const topFuncs = 5

func (s profileSummary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "  samples: %d, cpu: %v\n", s.Samples, s.CPU)
	for _, fc := range s.Top {
		fmt.Fprintf(&b, "  %10v  %s\n", fc.Flat, fc.Name)
	}

	return b.String()
}

func summarizeProfileFile(path string) (profileSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		return profileSummary{}, err
	}
	defer f.Close()

	return summarizeProfile(f)
}

// summarizeProfile parses a CPU profile and attributes each sample's CPU time
// to the leaf function of its stack.
func summarizeProfile(r io.Reader) (profileSummary, error) {
	prof, err := profile.Parse(r)
	if err != nil {
		return profileSummary{}, fmt.Errorf("parse profile: %w", err)
	}

	countIdx, cpuIdx := -1, -1
	for i, st := range prof.SampleType {
		switch st.Type {
		case "samples":
			countIdx = i
		case "cpu":
			cpuIdx = i
		}
	}
	if cpuIdx < 0 {
		return profileSummary{}, errors.New("parse profile: no cpu sample type")
	}

	var sum profileSummary
	flat := make(map[string]int64)
	for _, s := range prof.Sample {
		if countIdx >= 0 {
			sum.Samples += s.Value[countIdx]
		}
		sum.CPU += time.Duration(s.Value[cpuIdx])
		if name := leafName(s); name != "" {
			flat[name] += s.Value[cpuIdx]
		}
	}

	for name, ns := range flat {
		sum.Top = append(sum.Top, funcCost{Name: name, Flat: time.Duration(ns)})
	}
	sort.Slice(sum.Top, func(i, j int) bool {
		if sum.Top[i].Flat != sum.Top[j].Flat {
			return sum.Top[i].Flat > sum.Top[j].Flat
		}
		return sum.Top[i].Name < sum.Top[j].Name
	})
	if len(sum.Top) > topFuncs {
		sum.Top = sum.Top[:topFuncs]
	}

	return sum, nil
}

// leafName returns the innermost function of a sample's stack, or "".
func leafName(s *profile.Sample) string {
	if len(s.Location) == 0 || len(s.Location[0].Line) == 0 {
		return ""
	}
	if fn := s.Location[0].Line[0].Function; fn != nil {
		return fn.Name
	}

	return ""
}
