package alerting

import (
	"context"
	"fmt"
	"sync"
	"time"

	"veriface.io/application/constants"
	"veriface.io/application/utils"
	"veriface.io/entities"
	"veriface.io/infrastructure/logger"
)

// Service owns the alert lifecycle: creation, acknowledgement, querying
// and asynchronous escalation dispatch. The store is safe for concurrent
// producers (many sessions) plus the single dispatch worker.
type Service struct {
	mu       sync.RWMutex
	alerts   []*entities.Alert
	byID     map[string]*entities.Alert
	queue    chan entities.Alert
	policies map[entities.AlertSeverity]PolicyEntry
	channels map[ChannelName]NotificationChannel

	stop   context.CancelFunc
	doneWg sync.WaitGroup
}

var defaultMu sync.Mutex

var defaultService *Service

// SetDefault installs the process-wide alert service. Called once at
// startup after the notification channels are wired.
func SetDefault(s *Service) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultService = s
}

// Default returns the process-wide alert service, creating a log-only
// instance when startup never installed one (tests, tooling).
func Default() *Service {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultService == nil {
		defaultService = NewService()
	}
	return defaultService
}

func NewService(channels ...NotificationChannel) *Service {
	s := &Service{
		byID:     map[string]*entities.Alert{},
		queue:    make(chan entities.Alert, constants.AlertQueueCapacity),
		policies: DefaultEscalationPolicies(),
		channels: map[ChannelName]NotificationChannel{},
	}
	for _, ch := range channels {
		s.channels[ch.Name()] = ch
	}
	return s
}

// Start launches the single background dispatch worker. Alert creation
// never blocks on notification latency.
func (s *Service) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.stop = cancel
	s.doneWg.Add(1)
	go s.processAlerts(ctx)
}

// Stop shuts the worker down after it finishes the in-flight alert.
func (s *Service) Stop() {
	if s.stop != nil {
		s.stop()
		s.doneWg.Wait()
	}
}

// CreateAlert records a new active alert and enqueues it for escalation.
// If the dispatch queue is saturated the alert stays stored and queryable;
// only its notification fan-out is shed.
func (s *Service) CreateAlert(alertType entities.AlertType, sessionID string, severity entities.AlertSeverity, message string, details map[string]any, userID *string) entities.Alert {
	alert := entities.Alert{
		ID:        utils.GenerateULIDString(),
		Type:      alertType,
		Severity:  severity,
		Timestamp: time.Now(),
		UserID:    userID,
		SessionID: sessionID,
		Message:   message,
		Details:   details,
		Status:    entities.AlertActive,
	}

	s.mu.Lock()
	stored := alert
	s.alerts = append(s.alerts, &stored)
	s.byID[alert.ID] = &stored
	s.mu.Unlock()

	select {
	case s.queue <- alert:
	default:
		logger.Error("alert dispatch queue saturated, shedding notification", logger.LoggerOptions{
			Key:  "alertID",
			Data: alert.ID,
		}, logger.LoggerOptions{
			Key:  "severity",
			Data: alert.Severity,
		})
	}

	logger.Warning(fmt.Sprintf("Alert created: %s - %s", alertType, message), logger.LoggerOptions{
		Key:  "sessionID",
		Data: sessionID,
	}, logger.LoggerOptions{
		Key:  "severity",
		Data: severity,
	})
	return alert
}

// AcknowledgeAlert marks an alert as handled by an operator. Returns false
// when no alert with the id exists. Re-acknowledging an acknowledged alert
// succeeds and overwrites the acknowledger.
func (s *Service) AcknowledgeAlert(alertID string, acknowledgedBy string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	alert, ok := s.byID[alertID]
	if !ok {
		return false
	}
	now := time.Now()
	alert.Status = entities.AlertAcknowledged
	alert.AcknowledgedAt = &now
	alert.AcknowledgedBy = &acknowledgedBy

	logger.Info(fmt.Sprintf("Alert %s acknowledged by %s", alertID, acknowledgedBy))
	return true
}

// ActiveAlerts returns a snapshot of all alerts still in the active state,
// oldest first.
func (s *Service) ActiveAlerts() []entities.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := []entities.Alert{}
	for _, alert := range s.alerts {
		if alert.Status == entities.AlertActive {
			active = append(active, *alert)
		}
	}
	return active
}

// Statistics counts alerts by status, severity and type.
func (s *Service) Statistics() entities.AlertStatistics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := entities.AlertStatistics{
		TotalAlerts: len(s.alerts),
		BySeverity:  map[entities.AlertSeverity]int{},
		ByType:      map[entities.AlertType]int{},
	}
	for _, severity := range entities.AllSeverities {
		stats.BySeverity[severity] = 0
	}
	for _, alertType := range entities.AllAlertTypes {
		stats.ByType[alertType] = 0
	}
	for _, alert := range s.alerts {
		if alert.Status == entities.AlertActive {
			stats.ActiveAlerts++
		}
		stats.BySeverity[alert.Severity]++
		stats.ByType[alert.Type]++
	}
	return stats
}

// processAlerts is the sole queue consumer. Alerts dispatch strictly in
// enqueue order; severity does not jump the line.
func (s *Service) processAlerts(ctx context.Context) {
	defer s.doneWg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case alert := <-s.queue:
			s.dispatch(alert)
		}
	}
}

// dispatch walks the escalation policy's channels in order. A channel
// failure is logged and never blocks the remaining channels.
func (s *Service) dispatch(alert entities.Alert) {
	policy, ok := s.policies[alert.Severity]
	if !ok {
		policy = s.policies[entities.SeverityLow]
	}

	for _, name := range policy.Channels {
		if name == ChannelLog {
			s.logAlert(alert)
			continue
		}
		channel, ok := s.channels[name]
		if !ok {
			continue
		}
		if err := channel.Send(alert, policy); err != nil {
			logger.Error(fmt.Sprintf("error sending %s alert", name), logger.LoggerOptions{
				Key:  "error",
				Data: err,
			}, logger.LoggerOptions{
				Key:  "alertID",
				Data: alert.ID,
			})
		}
	}
}

func (s *Service) logAlert(alert entities.Alert) {
	logger.Warning(fmt.Sprintf("ALERT [%s] %s: %s (Session: %s)", alert.Severity, alert.Type, alert.Message, alert.SessionID))
}
