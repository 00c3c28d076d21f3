package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// CycleRunner runs one poll cycle.
type CycleRunner interface {
	RunCycle(ctx context.Context) error
}

// PollScheduler runs a CycleRunner right away and then every interval until stopped.
// The interval is truncated to whole seconds.
// Overlapping runs are skipped, so at most one cycle is in flight.
type PollScheduler struct {
	cronEngine *cron.Cron
	job        cron.Job
	runner     CycleRunner
	interval   time.Duration
	logger     *logrus.Entry

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewPollScheduler(runner CycleRunner, interval time.Duration, logger *logrus.Entry) *PollScheduler {
	cronLogger := cron.PrintfLogger(logger)
	ctx, cancel := context.WithCancel(context.Background())

	s := &PollScheduler{
		cronEngine: cron.New(cron.WithLocation(time.Local), cron.WithLogger(cronLogger)),
		runner:     runner,
		interval:   interval,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
	}
	s.job = cron.NewChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)).Then(cron.FuncJob(s.executePollCycle))
	return s
}

func (s *PollScheduler) Start() {
	s.logger.WithField("interval", s.interval.String()).Info("Starting poll scheduler...")

	s.cronEngine.Schedule(cron.Every(s.interval), s.job)
	s.cronEngine.Start()

	// First poll does not wait for the interval.
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.job.Run()
	}()

	s.logger.Info("Poll scheduler started.")
}

// executePollCycle runs one cycle. Errors are already reported by the runner.
func (s *PollScheduler) executePollCycle() {
	if s.ctx.Err() != nil {
		return
	}
	if err := s.runner.RunCycle(s.ctx); err != nil {
		s.logger.WithError(err).Debug("Poll cycle finished with error, retrying on next tick")
	}
}

// Stop cancels the running cycle, if any, and waits for it to return.
func (s *PollScheduler) Stop() {
	s.logger.Info("Stopping poll scheduler...")
	s.cancel()
	ctx := s.cronEngine.Stop() // Stops the scheduler from adding new jobs, waits for running jobs.
	<-ctx.Done()
	s.wg.Wait()
	s.logger.Info("Poll scheduler gracefully stopped.")
}
