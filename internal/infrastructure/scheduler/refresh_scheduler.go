package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// RefreshJob reloads the entity caches. It is called with a fresh timeout context per run.
type RefreshJob func(ctx context.Context) error

// RefreshScheduler runs a RefreshJob on a cron spec ("@every 5m", "0 */10 * * * *").
type RefreshScheduler struct {
	cron    *cron.Cron
	job     RefreshJob
	timeout time.Duration
	logger  *zap.Logger
}

func NewRefreshScheduler(spec string, timeout time.Duration, job RefreshJob, logger *zap.Logger) (*RefreshScheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = time.Minute
	}
	s := &RefreshScheduler{
		cron:    cron.New(cron.WithParser(cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor))),
		job:     job,
		timeout: timeout,
		logger:  logger,
	}
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", spec, err)
	}
	return s, nil
}

func (s *RefreshScheduler) Start() {
	s.cron.Start()
	s.logger.Info("[refresh][scheduler] started")
}

// Stop prevents new runs and waits for a running one to finish or ctx to expire.
func (s *RefreshScheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.logger.Warn("[refresh][scheduler] stop timed out")
	}
}

func (s *RefreshScheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	if err := s.job(ctx); err != nil {
		s.logger.Error("[refresh][scheduler] refresh failed", zap.Error(err))
		return
	}
	s.logger.Debug("[refresh][scheduler] refresh done", zap.Duration("took", time.Since(start)))
}
