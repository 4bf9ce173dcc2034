package scenario

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/FocuswithJustin/typecast/core/numeric"
)

const defaultTranscript = `widen-int-to-long: 10
widen-int-to-float: 70.0
narrow-int-to-byte: 70
narrow-int-to-byte-overflow: -1
`

func TestDefaultOrder(t *testing.T) {
	want := []string{
		"widen-int-to-long",
		"widen-int-to-float",
		"narrow-int-to-byte",
		"narrow-int-to-byte-overflow",
	}
	got := Default()
	if len(got) != len(want) {
		t.Fatalf("Default() returned %d scenarios, want %d", len(got), len(want))
	}
	for i, s := range got {
		if s.Name != want[i] {
			t.Errorf("Default()[%d].Name = %q, want %q", i, s.Name, want[i])
		}
		if !s.Kind.Valid() {
			t.Errorf("Default()[%d] has invalid kind %v", i, s.Kind)
		}
	}
}

func TestRunDefault(t *testing.T) {
	results := Run(context.Background(), Default())

	if err := FirstError(results); err != nil {
		t.Fatalf("FirstError() = %v, want nil", err)
	}
	if got := string(Transcript(results)); got != defaultTranscript {
		t.Errorf("Transcript() =\n%s\nwant\n%s", got, defaultTranscript)
	}

	wantKinds := []numeric.Kind{numeric.KindLong, numeric.KindFloat, numeric.KindByte, numeric.KindByte}
	for i, r := range results {
		if r.Value.Kind() != wantKinds[i] {
			t.Errorf("%s: kind = %v, want %v", r.Name, r.Value.Kind(), wantKinds[i])
		}
	}
}

func TestRunIsolatesFailures(t *testing.T) {
	scenarios := []Scenario{
		{Name: "first", Input: 1, Kind: numeric.WidenIntToLong, Want: "1"},
		{Name: "bogus", Input: 2, Kind: numeric.ConversionKind(42), Want: "2"},
		{Name: "last", Input: 255, Kind: numeric.NarrowIntToByte, Want: "-1"},
	}
	results := Run(context.Background(), scenarios)

	if len(results) != 3 {
		t.Fatalf("Run() returned %d results, want 3", len(results))
	}
	if results[0].Err != nil || results[2].Err != nil {
		t.Errorf("unexpected errors: %v, %v", results[0].Err, results[2].Err)
	}
	if !errors.Is(results[1].Err, numeric.ErrUnsupportedConversion) {
		t.Errorf("results[1].Err = %v, want unsupported conversion", results[1].Err)
	}

	err := FirstError(results)
	if err == nil || !strings.HasPrefix(err.Error(), "scenario bogus: ") {
		t.Errorf("FirstError() = %v, want error for scenario bogus", err)
	}

	want := "first: 1\nbogus: error: unsupported conversion: kind 42\nlast: -1\n"
	if got := string(Transcript(results)); got != want {
		t.Errorf("Transcript() = %q, want %q", got, want)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := Run(ctx, Default())
	for _, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("%s: Err = %v, want context.Canceled", r.Name, r.Err)
		}
	}
}

func TestDigest(t *testing.T) {
	a := Digest(Run(context.Background(), Default()))
	b := Digest(Run(context.Background(), Default()))
	if a != b {
		t.Errorf("Digest() not deterministic: %s != %s", a, b)
	}
	if len(a) != 64 {
		t.Errorf("len(Digest()) = %d, want 64", len(a))
	}

	shorter := Digest(Run(context.Background(), Default()[:3]))
	if shorter == a {
		t.Error("different transcripts produced the same digest")
	}
}

func TestCheck(t *testing.T) {
	t.Run("default passes", func(t *testing.T) {
		report := Check(Run(context.Background(), Default()))
		if !report.Passed || report.Total != 4 || report.Failed != 0 {
			t.Errorf("Check() = %+v, want all passing", report)
		}
	})

	t.Run("mismatch and error", func(t *testing.T) {
		scenarios := []Scenario{
			{Name: "wrong", Input: 255, Kind: numeric.NarrowIntToByte, Want: "255"},
			{Name: "ok", Input: 70, Kind: numeric.WidenIntToFloat, Want: "70.0"},
			{Name: "broken", Input: 1, Kind: 0, Want: "1"},
		}
		report := Check(Run(context.Background(), scenarios))
		if report.Passed {
			t.Fatal("Check() passed, want failure")
		}
		if report.Total != 3 || report.Failed != 2 {
			t.Errorf("Total/Failed = %d/%d, want 3/2", report.Total, report.Failed)
		}
		if m := report.Mismatches[0]; m.Name != "wrong" || m.Got != "-1" || m.Want != "255" || m.Kind != "narrow-int-to-byte" {
			t.Errorf("Mismatches[0] = %+v", m)
		}
		if m := report.Mismatches[1]; m.Name != "broken" || m.Error != "unsupported conversion: kind 0" || m.Got != "" {
			t.Errorf("Mismatches[1] = %+v", m)
		}

		data, err := json.Marshal(report)
		if err != nil {
			t.Fatalf("json.Marshal() error = %v", err)
		}
		if !strings.Contains(string(data), `"passed":false`) {
			t.Errorf("unexpected JSON %s", data)
		}
	})
}
