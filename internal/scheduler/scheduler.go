// Package scheduler pre-generates each day's word at midnight UTC so the
// first visitor of the day never waits on the AI call. Generation stays lazy
// as a fallback: if a run fails, the first request of the day triggers it.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/justjelku/wordle-clone/internal/models"
	"github.com/justjelku/wordle-clone/internal/service"
)

// generateTimeout bounds one scheduled generation run, AI retries included.
const generateTimeout = 2 * time.Minute

// Scheduler manages the daily word pre-generation job.
type Scheduler struct {
	scheduler *gocron.Scheduler
	words     *service.WordService
}

// New creates a new scheduler instance.
func New(words *service.WordService) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		words:     words,
	}
}

// Start schedules the midnight job and runs the scheduler in the background.
// The job also runs once at startup to cover a server that boots mid-day.
func (s *Scheduler) Start() {
	s.scheduler.Every(1).Day().At("00:00").Do(s.ensureTodaysWord)
	s.scheduler.StartAsync()
	go s.ensureTodaysWord()
}

// Stop terminates all scheduled tasks.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) ensureTodaysWord() {
	ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
	defer cancel()

	word, err := s.words.EnsureDailyWord(ctx, models.Today())
	if err != nil {
		log.Printf("scheduled daily word generation failed: %v", err)
		return
	}
	log.Printf("daily word ready for %s (category %s)", word.Date, word.Category)
}
