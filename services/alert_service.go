package services

import (
	"arka/models"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AlertService handles scheduled reminders
type AlertService struct {
	repo  AlertRepository
	audit *AuditService
}

// NewAlertService creates a new alert service
func NewAlertService(repo AlertRepository, audit *AuditService) *AlertService {
	return &AlertService{
		repo:  repo,
		audit: audit,
	}
}

// NextTrigger advances a trigger time by one recurrence interval using
// calendar arithmetic, so monthly alerts stay on the same day of month.
func NextTrigger(from time.Time, recurrence string) time.Time {
	switch recurrence {
	case models.RecurrenceDaily:
		return from.AddDate(0, 0, 1)
	case models.RecurrenceWeekly:
		return from.AddDate(0, 0, 7)
	case models.RecurrenceMonthly:
		return from.AddDate(0, 1, 0)
	case models.RecurrenceYearly:
		return from.AddDate(1, 0, 0)
	default:
		return from
	}
}

// Create schedules an alert. The first trigger must not be in the past.
func (als *AlertService) Create(actor *models.Session, req *models.CreateAlertRequest) (*models.Alert, error) {
	if req.NextTriggerAt.Before(time.Now()) {
		return nil, ErrTriggerInPast
	}

	now := time.Now()
	alert := &models.Alert{
		ID:            uuid.New().String(),
		MemberID:      actor.MemberID,
		Title:         strings.TrimSpace(req.Title),
		Message:       strings.TrimSpace(req.Message),
		TargetType:    req.TargetType,
		TargetID:      req.TargetID,
		Recurrence:    req.Recurrence,
		NextTriggerAt: req.NextTriggerAt,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := als.repo.CreateAlert(alert); err != nil {
		return nil, err
	}

	als.audit.Record(actor.FamilyID, actor.MemberID, "alert.create", "alert", alert.ID, alert.Title)
	return alert, nil
}

// Get returns an alert owned by the caller.
func (als *AlertService) Get(actor *models.Session, alertID string) (*models.Alert, error) {
	alert, err := als.repo.GetAlert(alertID)
	if err != nil {
		return nil, err
	}
	if alert == nil || alert.MemberID != actor.MemberID {
		return nil, ErrAlertNotFound
	}
	return alert, nil
}

// List returns all of the caller's alerts, soonest first.
func (als *AlertService) List(actor *models.Session) ([]models.Alert, error) {
	return als.repo.GetAlertsByMember(actor.MemberID)
}

// Upcoming returns the caller's active alerts due within the horizon.
func (als *AlertService) Upcoming(actor *models.Session, horizon time.Duration) ([]models.Alert, error) {
	return als.repo.GetUpcomingAlerts(actor.MemberID, time.Now().Add(horizon))
}

// Update edits an alert. Reactivating or rescheduling into the past is
// rejected the same way creation is.
func (als *AlertService) Update(actor *models.Session, alertID string, req *models.UpdateAlertRequest) (*models.Alert, error) {
	alert, err := als.Get(actor, alertID)
	if err != nil {
		return nil, err
	}

	if req.Active && req.NextTriggerAt.Before(time.Now()) {
		return nil, ErrTriggerInPast
	}

	alert.Title = strings.TrimSpace(req.Title)
	alert.Message = strings.TrimSpace(req.Message)
	alert.Recurrence = req.Recurrence
	alert.NextTriggerAt = req.NextTriggerAt
	alert.Active = req.Active

	if err := als.repo.UpdateAlert(alert); err != nil {
		return nil, err
	}

	als.audit.Record(actor.FamilyID, actor.MemberID, "alert.update", "alert", alertID, alert.Title)
	return als.repo.GetAlert(alertID)
}

// Delete removes an alert.
func (als *AlertService) Delete(actor *models.Session, alertID string) error {
	alert, err := als.Get(actor, alertID)
	if err != nil {
		return err
	}

	if err := als.repo.DeleteAlert(alertID); err != nil {
		return err
	}

	als.audit.Record(actor.FamilyID, actor.MemberID, "alert.delete", "alert", alertID, alert.Title)
	return nil
}

// Fire records a trigger. One-shot alerts deactivate; recurring alerts
// advance until the next trigger lies in the future, catching up across
// missed intervals.
func (als *AlertService) Fire(alert *models.Alert, now time.Time) error {
	if alert.Recurrence == models.RecurrenceNone {
		return als.repo.MarkAlertTriggered(alert.ID, now, alert.NextTriggerAt, false)
	}

	next := NextTrigger(alert.NextTriggerAt, alert.Recurrence)
	for !next.After(now) {
		next = NextTrigger(next, alert.Recurrence)
	}

	return als.repo.MarkAlertTriggered(alert.ID, now, next, true)
}

// Due returns active alerts whose trigger time has passed.
func (als *AlertService) Due(now time.Time, limit int) ([]models.Alert, error) {
	return als.repo.GetDueAlerts(now, limit)
}
