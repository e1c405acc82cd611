package handlekit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/handlekit/pkg/async"
	"github.com/dmitrymomot/handlekit/pkg/handle"
	"github.com/dmitrymomot/handlekit/pkg/logger"
	"github.com/dmitrymomot/handlekit/pkg/nameparse"
)

// Runner turns a batch of raw full names into an ordered list of generated
// handles and addresses. Create one with NewRunner, which validates the
// configuration once so individual names never fail on config errors.
type Runner struct {
	cfg     handle.Config
	mode    Mode
	domains []string
	log     *slog.Logger
	workers int
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithMode selects which kinds of values the run produces.
// The default is ModeUsernames.
func WithMode(mode Mode) RunnerOption {
	return func(r *Runner) {
		r.mode = mode
	}
}

// WithDomains sets the email domains used when the mode includes emails.
func WithDomains(domains ...string) RunnerOption {
	return func(r *Runner) {
		r.domains = domains
	}
}

// WithLogger sets the logger used for batch progress and skipped names.
// The default is slog.Default().
func WithLogger(log *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if log != nil {
			r.log = log
		}
	}
}

// WithConcurrency processes up to n names in parallel. Results keep input
// order regardless of completion order. Values below 2 keep the default
// sequential behavior.
func WithConcurrency(n int) RunnerOption {
	return func(r *Runner) {
		r.workers = n
	}
}

// NewRunner validates the configuration and mode up front and returns a ready
// Runner. Mode and domain problems surface here, not per name.
func NewRunner(cfg handle.Config, opts ...RunnerOption) (*Runner, error) {
	r := &Runner{
		cfg:  cfg,
		mode: ModeUsernames,
		log:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	if !r.mode.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, r.mode)
	}
	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}
	if r.mode.emails() && len(r.domains) == 0 {
		return nil, handle.ErrNoDomains
	}

	return r, nil
}

// Run processes names in input order and returns their generated values.
// Names that fail validation are logged at WARN and skipped; the rest of the
// batch continues. For ModeBoth each name yields its usernames before its
// emails. An empty result set is not an error.
func (r *Runner) Run(ctx context.Context, names []string) ([]Result, error) {
	ctx = WithRunID(ctx, uuid.NewString())

	log := r.log.With(logger.Component("runner"))
	started := time.Now()
	log.InfoContext(ctx, "batch started",
		slog.String("mode", string(r.mode)),
		slog.Int("names", len(names)),
	)

	var (
		batches [][]Result
		err     error
	)
	if r.workers > 1 {
		batches, err = r.fanOut(ctx, log, names)
	} else {
		batches, err = r.sequential(ctx, log, names)
	}
	if err != nil {
		return nil, err
	}

	total := 0
	for _, batch := range batches {
		total += len(batch)
	}
	results := make([]Result, 0, total)
	for _, batch := range batches {
		results = append(results, batch...)
	}

	log.InfoContext(ctx, "batch complete",
		logger.Count(len(results)),
		logger.Duration(time.Since(started)),
	)
	return results, nil
}

func (r *Runner) sequential(ctx context.Context, log *slog.Logger, names []string) ([][]Result, error) {
	batches := make([][]Result, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		batch, err := r.process(ctx, log, name)
		if err != nil {
			return nil, err
		}
		batches = append(batches, batch)
	}
	return batches, nil
}

// fanOut runs names through bounded futures and reassembles results by index.
func (r *Runner) fanOut(ctx context.Context, log *slog.Logger, names []string) ([][]Result, error) {
	sem := make(chan struct{}, r.workers)
	futures := make([]*async.Future[[]Result], len(names))
	for i, name := range names {
		futures[i] = async.Async(ctx, name, func(ctx context.Context, name string) ([]Result, error) {
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			defer func() { <-sem }()

			return r.process(ctx, log, name)
		})
	}
	return async.WaitAll(futures...)
}

// process generates all values for one name. Results carry the
// whitespace-normalized name, the same form the parser reports. A validation
// failure empties the whole name, including any kind already generated.
func (r *Runner) process(ctx context.Context, log *slog.Logger, name string) ([]Result, error) {
	name = nameparse.Normalize(name)

	var out []Result

	if r.mode.usernames() {
		usernames, err := handle.Usernames(name, r.cfg)
		if err != nil {
			return nil, r.skip(ctx, log, name, err)
		}
		for _, username := range usernames {
			out = append(out, usernameResult(name, username))
		}
	}

	if r.mode.emails() {
		addresses, err := handle.Emails(name, r.domains, r.cfg)
		if err != nil {
			return nil, r.skip(ctx, log, name, err)
		}
		for _, address := range addresses {
			out = append(out, emailResult(name, address))
		}
	}

	return out, nil
}

// skip downgrades per-name validation errors to a warning so the batch
// continues. Anything else aborts the run.
func (r *Runner) skip(ctx context.Context, log *slog.Logger, name string, err error) error {
	if errors.Is(err, nameparse.ErrNameTooShort) || errors.Is(err, nameparse.ErrEmptyNamePart) {
		log.WarnContext(ctx, "skipping name", logger.Name(name), logger.Error(err))
		return nil
	}
	return err
}
