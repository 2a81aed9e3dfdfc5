package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/robfig/cron/v3"

	"sema-licenca/internal/adapters/postgrest"
	"sema-licenca/internal/config"
	"sema-licenca/internal/core/domain"
)

// SweepService expires draft processes that were never submitted
type SweepService struct {
	rest *postgrest.Client
	cfg  config.DraftSweepConfig
	cron *cron.Cron
}

// NewSweepService creates a new draft-expiry sweep service
func NewSweepService(rest *postgrest.Client, cfg config.DraftSweepConfig) *SweepService {
	return &SweepService{
		rest: rest,
		cfg:  cfg,
		cron: cron.New(),
	}
}

// Start schedules the sweep job. No-op when the sweep is disabled.
func (s *SweepService) Start() error {
	if !s.cfg.Enabled {
		log.Println("⚠️ Draft sweep disabled, skipping scheduler")
		return nil
	}
	if _, err := s.cron.AddFunc(s.cfg.Schedule, s.runSweep); err != nil {
		return fmt.Errorf("failed to schedule draft sweep: %w", err)
	}
	s.cron.Start()
	log.Printf("✅ Draft sweep scheduled (%s, max age %d days)", s.cfg.Schedule, s.cfg.MaxAgeDays)
	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish
func (s *SweepService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *SweepService) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	count, err := s.Sweep(ctx)
	if err != nil {
		log.Printf("❌ Draft sweep failed: %v", err)
		return
	}
	log.Printf("✅ Draft sweep expired %d stale processes", count)
}

// Sweep marks drafts older than the cutoff as expired and returns how
// many rows changed. Runs with the service-role key.
func (s *SweepService) Sweep(ctx context.Context) (int, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -s.cfg.MaxAgeDays).Format(time.RFC3339)
	path := "/processos?status=eq." + domain.ProcessoStatusDraft + "&created_at=lt." + url.QueryEscape(cutoff)

	rows, err := s.rest.Patch(ctx, path,
		map[string]any{"status": domain.ProcessoStatusExpired},
		s.rest.HeadersFor(""))
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}
