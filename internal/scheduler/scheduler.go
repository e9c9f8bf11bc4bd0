package scheduler

import (
	"context"
	"time"

	"propdesk-backend/internal/application/notifications"
	"propdesk-backend/internal/application/staleness"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Scheduler runs the periodic staleness sweep and hands the results to the
// notification batcher. Send failures are logged, never retried here.
type Scheduler struct {
	cron       *cron.Cron
	staleness  *staleness.Service
	sender     notifications.Sender
	mailFrom   string
	recipients []string
	chunkSize  int
	cronSpec   string
	isRunning  bool
}

func New(stale *staleness.Service, sender notifications.Sender, mailFrom string, recipients []string, chunkSize int, cronSpec string) *Scheduler {
	return &Scheduler{
		cron:       cron.New(),
		staleness:  stale,
		sender:     sender,
		mailFrom:   mailFrom,
		recipients: recipients,
		chunkSize:  chunkSize,
		cronSpec:   cronSpec,
	}
}

// Start registers the sweep job and starts the cron loop.
func (s *Scheduler) Start() error {
	if len(s.recipients) == 0 {
		log.Info().Msg("Scheduler: no reminder recipients configured, sweep disabled")
		return nil
	}
	_, err := s.cron.AddFunc(s.cronSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := s.RunSweep(ctx); err != nil {
			log.Error().Err(err).Msg("Scheduler: staleness sweep failed")
		}
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	s.isRunning = true
	log.Info().Str("cron", s.cronSpec).Int("recipients", len(s.recipients)).Msg("Scheduler: started staleness sweep")
	return nil
}

// Stop stops the cron loop.
func (s *Scheduler) Stop() {
	if s.isRunning {
		s.cron.Stop()
		s.isRunning = false
		log.Info().Msg("Scheduler: stopped")
	}
}

// RunSweep executes one sweep: query both stale sets, build the digest,
// send one message per recipient chunk.
func (s *Scheduler) RunSweep(ctx context.Context) error {
	deals, reqs, err := s.staleness.Sweep(ctx)
	if err != nil {
		return err
	}
	if len(deals) == 0 && len(reqs) == 0 {
		log.Info().Msg("Scheduler: nothing stale, no reminders sent")
		return nil
	}

	messages, err := notifications.BuildReminderMessages(s.mailFrom, s.recipients, s.chunkSize, deals, reqs)
	if err != nil {
		return err
	}
	sent := 0
	for _, msg := range messages {
		if err := s.sender.Send(ctx, msg); err != nil {
			log.Error().Err(err).Int("recipients", len(msg.To)).Msg("Scheduler: reminder send failed")
			continue
		}
		sent++
	}
	log.Info().Int("stale_deals", len(deals)).Int("stale_requirements", len(reqs)).Int("messages_sent", sent).Msg("Scheduler: sweep complete")
	return nil
}
