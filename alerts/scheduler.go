package alerts

import (
	"arka/services"
	"log"
	"sync"
	"time"
)

const dueBatchSize = 50

// Scheduler fires due alerts in the background. The loop runs on an
// adaptive interval: tight while alerts keep coming due, relaxed when the
// queue is empty.
type Scheduler struct {
	alerts          *services.AlertService
	members         services.MemberRepository
	audit           *services.AuditService
	baseInterval    time.Duration
	maxInterval     time.Duration
	currentInterval time.Duration
	running         bool
	mu              sync.Mutex
	stopChan        chan struct{}
}

// NewScheduler creates a new alert scheduler
func NewScheduler(alerts *services.AlertService, members services.MemberRepository, audit *services.AuditService) *Scheduler {
	return &Scheduler{
		alerts:          alerts,
		members:         members,
		audit:           audit,
		baseInterval:    30 * time.Second,
		maxInterval:     2 * time.Minute,
		currentInterval: 30 * time.Second,
		stopChan:        make(chan struct{}),
	}
}

// Start begins the background scheduler
func (s *Scheduler) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	log.Println("[Alert Scheduler] Starting background alert scheduler")

	go s.run()
}

// Stop gracefully stops the background scheduler
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	log.Println("[Alert Scheduler] Stopping background alert scheduler")
	close(s.stopChan)
	s.running = false
}

// run is the main loop with adaptive backoff
func (s *Scheduler) run() {
	ticker := time.NewTicker(s.currentInterval)
	defer ticker.Stop()

	// Fire anything already due on start
	s.fireDueAlerts()

	for {
		select {
		case <-ticker.C:
			hadWork := s.fireDueAlerts()

			s.mu.Lock()
			if hadWork {
				if s.currentInterval != s.baseInterval {
					s.currentInterval = s.baseInterval
					ticker.Reset(s.currentInterval)
				}
			} else {
				if s.currentInterval < s.maxInterval {
					s.currentInterval = s.maxInterval
					ticker.Reset(s.currentInterval)
				}
			}
			s.mu.Unlock()
		case <-s.stopChan:
			return
		}
	}
}

// fireDueAlerts processes one batch of due alerts and reports whether any
// work was found.
func (s *Scheduler) fireDueAlerts() bool {
	now := time.Now()

	due, err := s.alerts.Due(now, dueBatchSize)
	if err != nil {
		log.Printf("[Alert Scheduler] Failed to query due alerts: %v", err)
		return false
	}
	if len(due) == 0 {
		return false
	}

	for _, alert := range due {
		if err := s.alerts.Fire(&alert, now); err != nil {
			log.Printf("[Alert Scheduler] Failed to fire alert %s: %v", alert.ID, err)
			continue
		}

		member, err := s.members.GetMember(alert.MemberID)
		if err != nil || member == nil {
			log.Printf("[Alert Scheduler] Fired alert %s for unknown member %s", alert.ID, alert.MemberID)
			continue
		}

		s.audit.Record(member.FamilyID, alert.MemberID, "alert.fire", "alert", alert.ID, alert.Title)
		log.Printf("[Alert Scheduler] Fired alert %q for member %s", alert.Title, member.Name)
	}

	return true
}
