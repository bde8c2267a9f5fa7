// Package poller drives a job to a target status: one initial delay, then a
// bounded series of interval-spaced status checks.
package poller

import (
	"context"
	"fmt"
	"time"

	logging "github.com/ipfs/go-log/v2"
	"github.com/raulk/clock"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/storacha/daclient/lib/telemetry"
	"github.com/storacha/daclient/pkg/types"
)

var log = logging.Logger("poller")

const (
	DefaultMaxChecks     = 60
	DefaultCheckInterval = 10 * time.Second
	DefaultInitialDelay  = 5 * time.Minute
	DefaultTarget        = types.StatusConfirmed
)

// StatusAPI performs a single status lookup.
type StatusAPI interface {
	GetStatus(ctx context.Context, jobID string) (types.StatusResponse, error)
}

// Settings are the timing and target parameters of one wait.
type Settings struct {
	Target        types.Status
	MaxChecks     int
	CheckInterval time.Duration
	InitialDelay  time.Duration

	// OnCheck, when set, observes every status response in check order.
	OnCheck func(check int, resp types.StatusResponse)
}

// DefaultSettings returns the canonical defaults.
func DefaultSettings() Settings {
	return Settings{
		Target:        DefaultTarget,
		MaxChecks:     DefaultMaxChecks,
		CheckInterval: DefaultCheckInterval,
		InitialDelay:  DefaultInitialDelay,
	}
}

// MaxWait is the worst-case time a wait with these settings can take,
// excluding the time spent inside status calls.
func (s Settings) MaxWait() time.Duration {
	if s.MaxChecks <= 0 {
		return s.InitialDelay
	}
	return s.InitialDelay + time.Duration(s.MaxChecks-1)*s.CheckInterval
}

func (s Settings) validate() error {
	if s.MaxChecks <= 0 {
		return fmt.Errorf("max checks must be positive, got %d", s.MaxChecks)
	}
	if s.CheckInterval < 0 || s.InitialDelay < 0 {
		return fmt.Errorf("check interval and initial delay must not be negative")
	}
	if _, err := types.ParseStatus(string(s.Target)); err != nil {
		return err
	}
	return nil
}

// Poller waits for jobs to reach a status. It holds no per-wait state, so
// one Poller may serve any number of concurrent waits.
type Poller struct {
	api      StatusAPI
	clock    clock.Clock
	defaults Settings

	checks *telemetry.Counter
	waits  *telemetry.Timer
}

type Option func(*Poller)

func WithClock(clk clock.Clock) Option {
	return func(p *Poller) {
		p.clock = clk
	}
}

// WithDefaults replaces the settings used when a wait does not override them.
func WithDefaults(s Settings) Option {
	return func(p *Poller) {
		p.defaults = s
	}
}

func New(api StatusAPI, opts ...Option) *Poller {
	p := &Poller{
		api:      api,
		clock:    clock.New(),
		defaults: DefaultSettings(),
	}
	for _, opt := range opts {
		opt(p)
	}

	meter := otel.GetMeterProvider().Meter("github.com/storacha/daclient/pkg/poller")
	var err error
	if p.checks, err = telemetry.NewCounter(meter, "daclient_status_checks", "number of job status checks performed", "1"); err != nil {
		log.Warnw("failed to create status check counter", "error", err)
	}
	if p.waits, err = telemetry.NewTimer(meter, "daclient_status_wait_duration", "time spent waiting for a job status", []float64{1, 10, 60, 300, 600, 1200}); err != nil {
		log.Warnw("failed to create status wait timer", "error", err)
	}
	return p
}

// Defaults returns the settings used when a wait does not override them.
func (p *Poller) Defaults() Settings {
	return p.defaults
}

type WaitOption func(*Settings)

func WithTargetStatus(st types.Status) WaitOption {
	return func(s *Settings) {
		s.Target = st
	}
}

func WithMaxChecks(n int) WaitOption {
	return func(s *Settings) {
		s.MaxChecks = n
	}
}

func WithCheckInterval(d time.Duration) WaitOption {
	return func(s *Settings) {
		s.CheckInterval = d
	}
}

func WithInitialDelay(d time.Duration) WaitOption {
	return func(s *Settings) {
		s.InitialDelay = d
	}
}

func WithOnCheck(fn func(check int, resp types.StatusResponse)) WaitOption {
	return func(s *Settings) {
		s.OnCheck = fn
	}
}

// WaitForStatus returns the first status response whose status equals the
// target. A FAILED response ends the wait immediately with the server's
// error text, and running out of checks ends it with a timeout. Both are
// KindStatus errors, as is any status lookup failure.
func (p *Poller) WaitForStatus(ctx context.Context, jobID string, opts ...WaitOption) (types.StatusResponse, error) {
	s := p.defaults
	for _, opt := range opts {
		opt(&s)
	}
	if err := s.validate(); err != nil {
		return types.StatusResponse{}, types.WrapError(types.KindStatus, "invalid poll settings", err)
	}

	start := p.clock.Now()
	defer func() {
		p.waits.Record(ctx, p.clock.Since(start), attribute.String("target", s.Target.String()))
	}()

	log.Debugw("waiting for job status", "job", jobID, "target", s.Target, "initial_delay", s.InitialDelay, "max_checks", s.MaxChecks)
	if err := p.sleep(ctx, s.InitialDelay); err != nil {
		return types.StatusResponse{}, types.WrapError(types.KindStatus, fmt.Sprintf("waiting for job %s", jobID), err)
	}

	for check := 1; check <= s.MaxChecks; check++ {
		st, err := p.api.GetStatus(ctx, jobID)
		if err != nil {
			if types.IsKind(err, types.KindStatus) {
				return types.StatusResponse{}, err
			}
			return types.StatusResponse{}, types.WrapError(types.KindStatus, "checking job status", err)
		}
		p.checks.Inc(ctx, attribute.String("status", st.Status.String()))
		if s.OnCheck != nil {
			s.OnCheck(check, st)
		}

		if st.Status == s.Target {
			log.Debugw("job reached target status", "job", jobID, "status", st.Status, "checks", check)
			return st, nil
		}
		if st.Status.Failed() {
			msg := st.Error
			if msg == "" {
				msg = "no error reported"
			}
			return types.StatusResponse{}, types.NewErrorf(types.KindStatus, "job %s failed: %s", jobID, msg)
		}

		log.Debugw("job not yet at target status", "job", jobID, "status", st.Status, "target", s.Target, "check", check, "max_checks", s.MaxChecks)
		if check < s.MaxChecks {
			if err := p.sleep(ctx, s.CheckInterval); err != nil {
				return types.StatusResponse{}, types.WrapError(types.KindStatus, fmt.Sprintf("waiting for job %s", jobID), err)
			}
		}
	}

	return types.StatusResponse{}, types.NewErrorf(types.KindStatus, "timed out waiting for job %s to reach %s after %d checks", jobID, s.Target, s.MaxChecks)
}

func (p *Poller) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := p.clock.Timer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
