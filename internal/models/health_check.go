package models

import (
	"math"
	"time"
)

// Form and column names of the measurement fields.
const (
	FieldUserID            = "user_id"
	FieldHeight            = "height"
	FieldWeight            = "weight"
	FieldBloodPressureHigh = "blood_pressure_high"
	FieldBloodPressureLow  = "blood_pressure_low"
	FieldBloodSugar        = "blood_sugar"
)

// HealthCheckDB represents a health check record in the database.
// Height is in cm, weight in kg, blood pressure in mmHg and blood sugar in mg/dL.
type HealthCheckDB struct {
	ID                int64     `json:"id" db:"id"`
	UserID            int64     `json:"user_id" db:"user_id"`
	Height            float64   `json:"height" db:"height"`
	Weight            float64   `json:"weight" db:"weight"`
	BloodPressureHigh int       `json:"blood_pressure_high" db:"blood_pressure_high"`
	BloodPressureLow  int       `json:"blood_pressure_low" db:"blood_pressure_low"`
	BloodSugar        float64   `json:"blood_sugar" db:"blood_sugar"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

// Measurements is one submitted set of body measurements.
type Measurements struct {
	Height            float64
	Weight            float64
	BloodPressureHigh int
	BloodPressureLow  int
	BloodSugar        float64
}

// Validate checks that every measurement is a positive finite number.
// Blood pressure must also fit the INTEGER column.
func (m Measurements) Validate() error {
	floats := []struct {
		field string
		value float64
	}{
		{FieldHeight, m.Height},
		{FieldWeight, m.Weight},
		{FieldBloodSugar, m.BloodSugar},
	}
	for _, f := range floats {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value <= 0 {
			return NewValidationError(f.field, "must be a positive number")
		}
	}

	ints := []struct {
		field string
		value int
	}{
		{FieldBloodPressureHigh, m.BloodPressureHigh},
		{FieldBloodPressureLow, m.BloodPressureLow},
	}
	for _, i := range ints {
		if i.value <= 0 || i.value > math.MaxInt32 {
			return NewValidationError(i.field, "must be a positive integer")
		}
	}
	return nil
}
