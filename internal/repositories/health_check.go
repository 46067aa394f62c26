package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-health-tracker/internal/models"
)

// HealthCheckWriteRepository handles health check inserts
type HealthCheckWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewHealthCheckWriteRepository(db *sqlx.DB, txGetter TxGetter) *HealthCheckWriteRepository {
	return &HealthCheckWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts one record in a single statement and returns its id.
// An unknown user id yields ErrUserNotFound.
func (r *HealthCheckWriteRepository) Save(ctx context.Context, userID int64, m models.Measurements) (int64, error) {
	const query = `
		INSERT INTO health_checks (user_id, height, weight, blood_pressure_high, blood_pressure_low, blood_sugar, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id
	`
	args := []any{userID, m.Height, m.Weight, m.BloodPressureHigh, m.BloodPressureLow, m.BloodSugar}

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, args...)

	logQuery(query, args, id, err)

	if hasPgCode(err, pgForeignKeyViolation) {
		return 0, ErrUserNotFound
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// HealthCheckReadRepository handles health check reads.
// Every listing is ordered newest first (id descending).
type HealthCheckReadRepository struct {
	db *sqlx.DB
}

func NewHealthCheckReadRepository(db *sqlx.DB) *HealthCheckReadRepository {
	return &HealthCheckReadRepository{db: db}
}

const healthCheckColumns = `id, user_id, height, weight, blood_pressure_high, blood_pressure_low, blood_sugar, created_at`

// GetLatestByUserID returns the newest record of the user, or nil when there is none.
func (r *HealthCheckReadRepository) GetLatestByUserID(ctx context.Context, userID int64) (*models.HealthCheckDB, error) {
	query := `
		SELECT ` + healthCheckColumns + `
		FROM health_checks
		WHERE user_id = $1
		ORDER BY id DESC
		LIMIT 1
	`

	var hc models.HealthCheckDB
	err := r.db.GetContext(ctx, &hc, query, userID)

	logQuery(query, []any{userID}, hc.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &hc, nil
}

// ListByUserID returns the full history of the user.
func (r *HealthCheckReadRepository) ListByUserID(ctx context.Context, userID int64) ([]models.HealthCheckDB, error) {
	query := `
		SELECT ` + healthCheckColumns + `
		FROM health_checks
		WHERE user_id = $1
		ORDER BY id DESC
	`

	records := []models.HealthCheckDB{}
	err := r.db.SelectContext(ctx, &records, query, userID)

	logQuery(query, []any{userID}, len(records), err)

	if err != nil {
		return nil, err
	}
	return records, nil
}

// List returns the records of all users.
func (r *HealthCheckReadRepository) List(ctx context.Context) ([]models.HealthCheckDB, error) {
	query := `
		SELECT ` + healthCheckColumns + `
		FROM health_checks
		ORDER BY id DESC
	`

	records := []models.HealthCheckDB{}
	err := r.db.SelectContext(ctx, &records, query)

	logQuery(query, nil, len(records), err)

	if err != nil {
		return nil, err
	}
	return records, nil
}
