package diffcheck

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/goleak"

	coreerror "github.com/msto63/sso/pkg/core/error"
	"github.com/msto63/sso/pkg/core/log"
	"github.com/msto63/sso/pkg/sso"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestGenDeterministic(t *testing.T) {
	a, b := NewGen(42, 64), NewGen(42, 64)
	for i := 0; i < 100; i++ {
		x, y := a.Bytes(), b.Bytes()
		if !bytes.Equal(x, y) {
			t.Fatalf("draw %d differs: %q vs %q", i, x, y)
		}
		if a.Count() != b.Count() || a.Pos(10) != b.Pos(10) {
			t.Fatalf("draw %d differs", i)
		}
	}
}

func TestGenBounds(t *testing.T) {
	g := NewGen(7, 40)
	sawBoundary := map[int]bool{}
	for i := 0; i < 2000; i++ {
		n := g.Length()
		if n < 0 || n > 40 {
			t.Fatalf("Length() = %d outside [0, 40]", n)
		}
		if n == sso.InlineCap || n == sso.InlineCap+1 {
			sawBoundary[n] = true
		}
		if p := g.Pos(5); p < 0 || p > 5 {
			t.Fatalf("Pos(5) = %d", p)
		}
		if b := g.Beyond(5); b <= 5 {
			t.Fatalf("Beyond(5) = %d", b)
		}
		if c := g.Count(); c < 0 {
			t.Fatalf("Count() = %d", c)
		}
	}
	if !sawBoundary[sso.InlineCap] || !sawBoundary[sso.InlineCap+1] {
		t.Errorf("boundary lengths never generated: %v", sawBoundary)
	}
}

func TestNewGenDefaultLength(t *testing.T) {
	if g := NewGen(1, 0); g.maxLength != DefaultMaxLength {
		t.Errorf("maxLength = %d, want %d", g.maxLength, DefaultMaxLength)
	}
}

func TestCaseSeedSpread(t *testing.T) {
	seen := map[uint64]bool{}
	for _, name := range []string{"insert", "erase"} {
		for i := 0; i < 100; i++ {
			s := caseSeed(99, name, i)
			if seen[s] {
				t.Fatalf("duplicate case seed %d", s)
			}
			seen[s] = true
		}
	}
}

func TestSelect(t *testing.T) {
	all, err := Select(nil)
	if err != nil || len(all) != len(Properties()) {
		t.Fatalf("Select(nil) = %d properties, %v", len(all), err)
	}

	got, err := Select([]string{"substr", " insert "})
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	names := []string{got[0].Name, got[1].Name}
	if diff := cmp.Diff([]string{"insert", "substr"}, names); diff != "" {
		t.Errorf("Select() mismatch (-want +got):\n%s", diff)
	}

	_, err = Select([]string{"insert", "nope", "also-nope"})
	if !coreerror.HasCode(err, coreerror.CodeNotFound) {
		t.Fatalf("Select(unknown) error = %v", err)
	}
}

func TestNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, name := range Names() {
		if seen[name] {
			t.Errorf("duplicate property %q", name)
		}
		seen[name] = true
		if _, ok := Lookup(name); !ok {
			t.Errorf("Lookup(%q) failed", name)
		}
	}
}

func TestAllPropertiesPass(t *testing.T) {
	runner := NewRunner(Options{Iterations: 300, Seed: 12345, MaxLength: 80, Workers: 8}, nil)

	report, err := runner.Run(context.Background(), Properties())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for _, f := range report.Failures() {
		t.Errorf("%s failed (case seed %d): %s", f.Property, f.CaseSeed, f.Message)
	}
	for _, res := range report.Results {
		if res.Failure == nil && res.Passed != 300 {
			t.Errorf("%s passed %d cases, want 300", res.Property, res.Passed)
		}
	}
	if !report.OK() || report.Passed() != len(Properties()) {
		t.Errorf("Passed() = %d, Failed() = %d", report.Passed(), report.Failed())
	}
}

func brokenProperties() []Property {
	return []Property{
		{Name: "ok", Check: func(g *Gen) error { return nil }},
		{Name: "fails-on-long", Check: func(g *Gen) error {
			if b := g.Bytes(); len(b) > sso.InlineCap {
				return mismatch("fails-on-long", "length %d", len(b))
			}
			return nil
		}},
		{Name: "panics", Check: func(g *Gen) error {
			sso.New().PopBack()
			return nil
		}},
	}
}

func TestRunReportsFailures(t *testing.T) {
	var logs bytes.Buffer
	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatJSON, Output: &logs})
	runner := NewRunner(Options{Iterations: 200, Seed: 5, Workers: 2}, logger)

	report, err := runner.Run(context.Background(), brokenProperties())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if report.Seed != 5 || report.RunID == "" || report.Iterations != 200 {
		t.Errorf("report header = %+v", report)
	}
	if report.Passed() != 1 || report.Failed() != 2 || report.OK() {
		t.Errorf("Passed()/Failed() = %d/%d", report.Passed(), report.Failed())
	}

	got := report.Failures()
	want := []Failure{{Property: "fails-on-long"}, {Property: "panics"}}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(Failure{}, "CaseSeed", "Message")); diff != "" {
		t.Errorf("Failures() mismatch (-want +got):\n%s", diff)
	}
	if report.Results[2].Passed != 0 {
		t.Errorf("panicking property passed %d cases", report.Results[2].Passed)
	}
	if !bytes.Contains(logs.Bytes(), []byte("property failed")) {
		t.Errorf("failure was not logged: %s", logs.String())
	}

	// the recorded case seed reproduces the failure
	for _, f := range got {
		p := brokenProperties()[1]
		if f.Property == "panics" {
			p = brokenProperties()[2]
		}
		if err := runCase(p, f.CaseSeed, report.MaxLength); err == nil {
			t.Errorf("case %d of %s did not fail again", f.CaseSeed, f.Property)
		}
	}
}

func TestPanicBecomesInternalError(t *testing.T) {
	err := runCase(brokenProperties()[2], 1, 10)
	if !coreerror.HasCode(err, coreerror.CodeInternal) {
		t.Errorf("runCase() error = %v, want INTERNAL", err)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := NewRunner(Options{Iterations: 10, Seed: 1}, nil)
	_, err := runner.Run(ctx, Properties())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestRunDefaults(t *testing.T) {
	runner := NewRunner(Options{}, nil)
	if diff := cmp.Diff(DefaultOptions(), runner.Options()); diff != "" {
		t.Errorf("Options() mismatch (-want +got):\n%s", diff)
	}

	report, err := NewRunner(Options{Iterations: 1}, nil).Run(context.Background(), nil)
	if err != nil || report.Seed == 0 || len(report.Results) != 0 {
		t.Errorf("empty run = %+v, %v", report, err)
	}
}

func TestReplay(t *testing.T) {
	if err := Replay("insert", 77, 0); err != nil {
		t.Errorf("Replay(insert) = %v", err)
	}
	err := Replay("missing", 1, 10)
	if !coreerror.HasCode(err, coreerror.CodeNotFound) {
		t.Errorf("Replay(missing) = %v", err)
	}
}

func TestMismatchCode(t *testing.T) {
	err := mismatch("op", "x=%d", 1)
	if !coreerror.HasCode(err, coreerror.CodeMismatch) || err.Error() != "op: x=1" {
		t.Errorf("mismatch() = %v", err)
	}
}
