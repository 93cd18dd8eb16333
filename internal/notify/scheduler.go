package notify

import (
	"fmt"
	"time"

	"github.com/achaendus12-spec/my-project-manager/internal/logger"
	"github.com/achaendus12-spec/my-project-manager/internal/model"
	"github.com/achaendus12-spec/my-project-manager/internal/ui"
)

// Scheduler runs the notification check at load and on a periodic tick. It
// reads a fresh snapshot of the collection each tick and never assumes the
// collection is stable across a check.
type Scheduler struct {
	state    *State
	snapshot func() []model.Project
	surface  ui.Surface
	interval time.Duration
	stopCh   chan struct{}
}

// NewScheduler creates a scheduler over the given snapshot source
func NewScheduler(state *State, snapshot func() []model.Project, surface ui.Surface) *Scheduler {
	return &Scheduler{
		state:    state,
		snapshot: snapshot,
		surface:  surface,
		interval: time.Minute,
		stopCh:   make(chan struct{}),
	}
}

// Start fires an immediate check and then ticks in the background
func (s *Scheduler) Start() {
	s.CheckNow()
	go s.loop()
}

func (s *Scheduler) loop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.CheckNow()
		case <-s.stopCh:
			return
		}
	}
}

// CheckNow runs one check tick and surfaces the resulting alerts
func (s *Scheduler) CheckNow() {
	alerts := Check(s.state, s.snapshot(), time.Now())
	for _, a := range alerts {
		s.surface.Toast(ui.ToastWarning, Message(a))
	}
	if len(alerts) > 0 {
		logger.Info("Deadline alerts fired", logger.F("count", len(alerts)))
	}
}

// Stop ends the periodic tick
func (s *Scheduler) Stop() {
	close(s.stopCh)
}

// Message renders the human-readable alert text
func Message(a Alert) string {
	switch {
	case a.Kind == KindOverdue:
		return fmt.Sprintf("Deadline passed for %s", a.Name)
	case a.DaysLeft == 0:
		return fmt.Sprintf("Deadline today for %s", a.Name)
	default:
		return fmt.Sprintf("Deadline tomorrow for %s", a.Name)
	}
}
