package task

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/coursewave/coursewave-app/pkg/service/statistics"
)

// Broker owns the background schedule. Right now that is only the
// statistics snapshot refresh.
type Broker struct {
	cron     *cron.Cron
	statsSvc *statistics.Service
}

func NewBroker(statsSvc *statistics.Service) *Broker {
	return &Broker{
		cron:     cron.New(),
		statsSvc: statsSvc,
	}
}

// Start registers the scheduled jobs and runs the scheduler. It fails only
// when a schedule expression is invalid.
func (b *Broker) Start() error {
	if _, err := b.cron.AddFunc("@every 10m", b.refreshStats); err != nil {
		return err
	}
	b.cron.Start()

	// Warm the snapshot at startup instead of waiting for the first tick.
	go b.refreshStats()
	return nil
}

// Stop halts the scheduler and waits for running jobs to finish.
func (b *Broker) Stop() {
	ctx := b.cron.Stop()
	<-ctx.Done()
}

func (b *Broker) refreshStats() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if _, err := b.statsSvc.Refresh(ctx); err != nil {
		log.Printf("[task] refreshing statistics snapshot failed: %v", err)
	}
}
