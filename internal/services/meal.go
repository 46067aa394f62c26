package services

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-health-tracker/internal/logger"
	"github.com/sbilibin2017/gw-health-tracker/internal/models"
)

//go:generate mockgen -source=meal.go -destination=mock_meal.go -package=services

const (
	// MealSystemPrompt sets the assistant persona of every suggestion request.
	MealSystemPrompt = "You are a healthy-eating assistant supporting the user."

	// MealFallback is shown whenever no suggestion could be produced.
	MealFallback = "Could not generate a menu recommendation."

	mealPromptFormat = "My height is %s cm, my weight is %s kg, my blood pressure is %d/%d " +
		"and my blood sugar is %s mg/dL. Please recommend menus for breakfast, lunch and dinner."

	lineBreak = "<br>"

	// DefaultMealTimeout bounds completion calls when no positive timeout is configured.
	DefaultMealTimeout = 10 * time.Second
)

// ErrNoHealthCheck is returned when a suggestion is requested without a record.
var ErrNoHealthCheck = errors.New("no health check recorded")

// Completer sends a system and a user message to a chat completion service.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) models.Completion
}

// MealService builds meal suggestions from health checks.
type MealService struct {
	completer Completer
	timeout   time.Duration
}

// NewMealService creates a MealService; every completion call is bounded by timeout.
// A non-positive timeout is replaced by DefaultMealTimeout.
func NewMealService(completer Completer, timeout time.Duration) *MealService {
	if timeout <= 0 {
		timeout = DefaultMealTimeout
	}
	return &MealService{completer: completer, timeout: timeout}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// BuildMealPrompt embeds the measurements of the record into the suggestion prompt.
func BuildMealPrompt(record models.HealthCheckDB) string {
	return fmt.Sprintf(mealPromptFormat,
		formatNumber(record.Height),
		formatNumber(record.Weight),
		record.BloodPressureHigh,
		record.BloodPressureLow,
		formatNumber(record.BloodSugar),
	)
}

// FormatMenu escapes every line of the completion text and joins them with <br>.
func FormatMenu(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i, line := range lines {
		lines[i] = html.EscapeString(line)
	}
	return strings.Join(lines, lineBreak)
}

// Suggest returns display text with breakfast, lunch and dinner recommendations
// for the record. Service failures yield MealFallback; the only error is
// ErrNoHealthCheck for a nil record.
func (s *MealService) Suggest(ctx context.Context, record *models.HealthCheckDB) (string, error) {
	if record == nil {
		return "", ErrNoHealthCheck
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	completion := s.completer.Complete(ctx, MealSystemPrompt, BuildMealPrompt(*record))

	switch completion.Status {
	case models.CompletionOK:
		return FormatMenu(completion.Text), nil
	case models.CompletionEmpty:
		logger.Log.Warnw("empty meal suggestion", "healthCheckID", record.ID)
	default:
		logger.Log.Errorw("meal suggestion failed", "healthCheckID", record.ID, "status", completion.Status.String(), "error", completion.Err)
	}
	return MealFallback, nil
}
