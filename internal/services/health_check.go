package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-health-tracker/internal/logger"
	"github.com/sbilibin2017/gw-health-tracker/internal/models"
	"github.com/sbilibin2017/gw-health-tracker/internal/repositories"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=health_check.go -destination=mock_health_check.go -package=services

// HealthCheckWriter stores health checks.
type HealthCheckWriter interface {
	Save(ctx context.Context, userID int64, m models.Measurements) (int64, error) // Returns the new record id
}

// HealthCheckReader reads health checks, newest first.
type HealthCheckReader interface {
	GetLatestByUserID(ctx context.Context, userID int64) (*models.HealthCheckDB, error) // nil when the user has none
	ListByUserID(ctx context.Context, userID int64) ([]models.HealthCheckDB, error)
	List(ctx context.Context) ([]models.HealthCheckDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AfterCommitFunc defers fn until the transaction carried by ctx commits.
type AfterCommitFunc func(ctx context.Context, fn func())

func runNow(_ context.Context, fn func()) { fn() }

// HealthCheckService handles health check records and event publishing.
type HealthCheckService struct {
	writer      HealthCheckWriter
	reader      HealthCheckReader
	kafkaWriter KafkaWriter
	afterCommit AfterCommitFunc
}

// NewHealthCheckService creates a new HealthCheckService. kafkaWriter may be nil.
// Events are published right after the insert until WithAfterCommit is set.
func NewHealthCheckService(writer HealthCheckWriter, reader HealthCheckReader, kafkaWriter KafkaWriter) *HealthCheckService {
	return &HealthCheckService{
		writer:      writer,
		reader:      reader,
		kafkaWriter: kafkaWriter,
		afterCommit: runNow,
	}
}

// WithAfterCommit makes the service publish events only after the request transaction commits.
func (s *HealthCheckService) WithAfterCommit(afterCommit AfterCommitFunc) *HealthCheckService {
	if afterCommit != nil {
		s.afterCommit = afterCommit
	}
	return s
}

// publishEvent publishes a health check event to Kafka. Failures are only logged.
func (s *HealthCheckService) publishEvent(ctx context.Context, event models.HealthCheckEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal health check event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish health check event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Health check event published", "event_id", event.EventID, "health_check_id", event.HealthCheckID)
	}
}

// Append validates and stores a new record for the user and returns its id.
func (s *HealthCheckService) Append(ctx context.Context, userID int64, m models.Measurements) (int64, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}

	id, err := s.writer.Save(ctx, userID, m)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return 0, models.NewValidationError(models.FieldUserID, "user does not exist")
		}
		logger.Log.Errorw("failed to save health check", "userID", userID, "error", err)
		return 0, err
	}

	event := models.HealthCheckEvent{
		EventID:       uuid.NewString(),
		HealthCheckID: id,
		UserID:        userID,
		Operation:     models.HealthCheckCreated,
		Timestamp:     time.Now().Unix(),
	}
	s.afterCommit(ctx, func() { s.publishEvent(ctx, event) })

	return id, nil
}

// Latest returns the newest record of the user, or nil when there is none.
func (s *HealthCheckService) Latest(ctx context.Context, userID int64) (*models.HealthCheckDB, error) {
	hc, err := s.reader.GetLatestByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get latest health check", "userID", userID, "error", err)
		return nil, err
	}
	return hc, nil
}

// History returns every record of the user, newest first.
func (s *HealthCheckService) History(ctx context.Context, userID int64) ([]models.HealthCheckDB, error) {
	records, err := s.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list health checks", "userID", userID, "error", err)
		return nil, err
	}
	return records, nil
}

// ListAll returns the records of every user, newest first.
func (s *HealthCheckService) ListAll(ctx context.Context) ([]models.HealthCheckDB, error) {
	records, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list all health checks", "error", err)
		return nil, err
	}
	return records, nil
}
