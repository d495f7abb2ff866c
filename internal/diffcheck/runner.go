package diffcheck

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	coreerror "github.com/msto63/sso/pkg/core/error"
	"github.com/msto63/sso/pkg/core/log"
)

// Options controls a check run
type Options struct {
	// Iterations is the number of cases per property
	Iterations int
	// Seed of the run; 0 picks a time based seed
	Seed uint64
	// MaxLength bounds generated content lengths
	MaxLength int
	// Workers is the number of properties checked concurrently
	Workers int
}

// DefaultOptions returns the defaults used by the CLI
func DefaultOptions() Options {
	return Options{
		Iterations: 200,
		MaxLength:  DefaultMaxLength,
		Workers:    4,
	}
}

// Failure describes the first failing case of a property
type Failure struct {
	Property string `json:"property"`
	CaseSeed uint64 `json:"case_seed"`
	Message  string `json:"message"`
}

// Result is the outcome of one property
type Result struct {
	Property string        `json:"property"`
	Passed   int           `json:"passed"`
	Failure  *Failure      `json:"failure,omitempty"`
	Duration time.Duration `json:"duration"`
}

// Report is the outcome of a run
type Report struct {
	RunID      string        `json:"run_id"`
	Seed       uint64        `json:"seed"`
	Iterations int           `json:"iterations"`
	MaxLength  int           `json:"max_length"`
	Started    time.Time     `json:"started"`
	Duration   time.Duration `json:"duration"`
	Results    []Result      `json:"results"`
}

// Passed returns the number of properties without a failure
func (r *Report) Passed() int {
	n := 0
	for _, res := range r.Results {
		if res.Failure == nil {
			n++
		}
	}
	return n
}

// Failed returns the number of properties with a failure
func (r *Report) Failed() int {
	return len(r.Results) - r.Passed()
}

// Failures returns the failures in property order
func (r *Report) Failures() []Failure {
	var out []Failure
	for _, res := range r.Results {
		if res.Failure != nil {
			out = append(out, *res.Failure)
		}
	}
	return out
}

// OK reports whether every property passed
func (r *Report) OK() bool {
	return r.Failed() == 0
}

// Runner checks properties against the reference
type Runner struct {
	opts   Options
	logger *log.Logger
}

// NewRunner creates a runner. Missing options fall back to DefaultOptions.
func NewRunner(opts Options, logger *log.Logger) *Runner {
	defaults := DefaultOptions()
	if opts.Iterations <= 0 {
		opts.Iterations = defaults.Iterations
	}
	if opts.MaxLength <= 0 {
		opts.MaxLength = defaults.MaxLength
	}
	if opts.Workers <= 0 {
		opts.Workers = defaults.Workers
	}
	if logger == nil {
		logger = log.Discard()
	}
	return &Runner{opts: opts, logger: logger.WithName("diffcheck")}
}

// Options returns the effective options
func (r *Runner) Options() Options {
	return r.opts
}

// Run checks every property and returns the report. A property stops at its
// first failing case. Run returns early with the context error when ctx is
// cancelled.
func (r *Runner) Run(ctx context.Context, props []Property) (*Report, error) {
	seed := r.opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	report := &Report{
		RunID:      uuid.NewString(),
		Seed:       seed,
		Iterations: r.opts.Iterations,
		MaxLength:  r.opts.MaxLength,
		Started:    time.Now(),
		Results:    make([]Result, len(props)),
	}
	logger := r.logger.WithField("run_id", report.RunID)
	timer := logger.StartTimer("check").
		WithLevel(log.LevelInfo).
		WithField("properties", len(props)).
		WithField("seed", seed)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(r.opts.Workers)

	for i, p := range props {
		eg.Go(func() error {
			res, err := r.runProperty(egCtx, seed, p)
			if err != nil {
				return err
			}
			report.Results[i] = res
			if res.Failure != nil {
				logger.Warn("property failed", log.Fields{
					"property":  p.Name,
					"case_seed": res.Failure.CaseSeed,
					"error":     res.Failure.Message,
				})
			} else {
				logger.Debug("property passed", log.String("property", p.Name), log.Int("cases", res.Passed))
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		timer.StopWithError(err)
		return nil, err
	}
	report.Duration = time.Since(report.Started)
	timer.WithField("failed", report.Failed()).Stop()
	return report, nil
}

func (r *Runner) runProperty(ctx context.Context, seed uint64, p Property) (Result, error) {
	start := time.Now()
	res := Result{Property: p.Name}

	for i := 0; i < r.opts.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		cs := caseSeed(seed, p.Name, i)
		if err := runCase(p, cs, r.opts.MaxLength); err != nil {
			res.Failure = &Failure{Property: p.Name, CaseSeed: cs, Message: err.Error()}
			break
		}
		res.Passed++
	}
	res.Duration = time.Since(start)
	return res, nil
}

// runCase runs one case and turns a panic into an error
func runCase(p Property, seed uint64, maxLength int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = coreerror.New(fmt.Sprintf("%s: panic: %v", p.Name, r)).
				WithCode(coreerror.CodeInternal).
				WithOperation(p.Name).
				WithDetail("case_seed", seed)
		}
	}()
	return p.Check(NewGen(seed, maxLength))
}

// Replay reruns a single case of the named property
func Replay(name string, seed uint64, maxLength int) error {
	p, ok := Lookup(name)
	if !ok {
		return coreerror.Newf("unknown property: %s", name).
			WithCode(coreerror.CodeNotFound).
			WithOperation("diffcheck.Replay")
	}
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	return runCase(p, seed, maxLength)
}
