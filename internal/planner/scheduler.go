package planner

import (
	"log"
	"sync"
	"time"

	"github.com/shubhamsinha21/the-reddit-mastermind-assignment/internal/models"
)

// RunRecorder persists plan run summaries. Optional; a nil recorder means
// runs are only logged.
type RunRecorder interface {
	SaveRun(run models.PlanRun) error
}

// Scheduler regenerates the upcoming week's plan on a fixed interval.
type Scheduler struct {
	planner    *Planner
	recorder   RunRecorder
	weeksAhead int

	ticker   *time.Ticker
	stopChan chan bool
	isActive bool
	mu       sync.Mutex
}

func NewScheduler(planner *Planner, recorder RunRecorder, weeksAhead int) *Scheduler {
	if weeksAhead < 1 {
		weeksAhead = 1
	}
	return &Scheduler{
		planner:    planner,
		recorder:   recorder,
		weeksAhead: weeksAhead,
		stopChan:   make(chan bool),
	}
}

func (s *Scheduler) Start(interval time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isActive {
		return
	}

	s.ticker = time.NewTicker(interval)
	s.isActive = true

	go s.planOnce()

	go func() {
		for {
			select {
			case <-s.ticker.C:
				s.planOnce()
			case <-s.stopChan:
				return
			}
		}
	}()
}

func (s *Scheduler) planOnce() {
	weekStart := time.Now().AddDate(0, 0, 7*s.weeksAhead)
	plan := s.planner.GenerateWeek(0, weekStart)

	log.Printf("Auto-planned week of %s: %d posts, %d comments, score %.1f/10",
		plan.WeekStart.Format("2006-01-02"), len(plan.Posts), len(plan.Comments), plan.Score)

	if s.recorder != nil {
		if err := s.recorder.SaveRun(plan.Run()); err != nil {
			log.Printf("Failed to record plan run: %v", err)
		}
	}
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isActive {
		return
	}

	if s.ticker != nil {
		s.ticker.Stop()
	}
	s.stopChan <- true
	s.isActive = false
}

func (s *Scheduler) IsActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isActive
}
