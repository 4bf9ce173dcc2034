package scenario

import (
	"github.com/samber/lo"
)

// Mismatch describes a scenario whose output differed from its expectation.
type Mismatch struct {
	Name  string `json:"name"`
	Input int32  `json:"input"`
	Kind  string `json:"kind"`
	Want  string `json:"want"`
	Got   string `json:"got"`
	Error string `json:"error,omitempty"`
}

// Report is the result of checking scenario outputs against expectations.
type Report struct {
	Passed     bool       `json:"passed"`
	Total      int        `json:"total"`
	Failed     int        `json:"failed"`
	Mismatches []Mismatch `json:"mismatches,omitempty"`
}

// Check compares each result's rendered value with its Want.
// Errored results always count as mismatches.
func Check(results []Result) *Report {
	failing := lo.Filter(results, func(r Result, _ int) bool {
		return r.Err != nil || r.Value.String() != r.Want
	})

	mismatches := lo.Map(failing, func(r Result, _ int) Mismatch {
		m := Mismatch{
			Name:  r.Name,
			Input: r.Input,
			Kind:  r.Kind.String(),
			Want:  r.Want,
		}
		if r.Err != nil {
			m.Error = r.Err.Error()
		} else {
			m.Got = r.Value.String()
		}
		return m
	})

	return &Report{
		Passed:     len(mismatches) == 0,
		Total:      len(results),
		Failed:     len(mismatches),
		Mismatches: mismatches,
	}
}
