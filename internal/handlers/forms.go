package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-health-tracker/internal/models"
)

func formValue(r *http.Request, field string) (string, error) {
	v := strings.TrimSpace(r.PostFormValue(field))
	if v == "" {
		return "", models.NewValidationError(field, "is required")
	}
	return v, nil
}

func parseFloatField(r *http.Request, field string) (float64, error) {
	v, err := formValue(r, field)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, models.NewValidationError(field, "must be a number")
	}
	return f, nil
}

func parseIntField(r *http.Request, field string) (int, error) {
	v, err := formValue(r, field)
	if err != nil {
		return 0, err
	}
	i, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return 0, models.NewValidationError(field, "must be an integer")
	}
	return int(i), nil
}

// parseMeasurements reads the five measurement fields of a submitted form.
// Range checks are left to models.Measurements.Validate.
func parseMeasurements(r *http.Request) (models.Measurements, error) {
	var (
		m   models.Measurements
		err error
	)

	if m.Height, err = parseFloatField(r, models.FieldHeight); err != nil {
		return m, err
	}
	if m.Weight, err = parseFloatField(r, models.FieldWeight); err != nil {
		return m, err
	}
	if m.BloodPressureHigh, err = parseIntField(r, models.FieldBloodPressureHigh); err != nil {
		return m, err
	}
	if m.BloodPressureLow, err = parseIntField(r, models.FieldBloodPressureLow); err != nil {
		return m, err
	}
	if m.BloodSugar, err = parseFloatField(r, models.FieldBloodSugar); err != nil {
		return m, err
	}
	return m, nil
}

func parseUserID(r *http.Request) (int64, error) {
	v, err := formValue(r, models.FieldUserID)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		return 0, models.NewValidationError(models.FieldUserID, "must be a positive integer")
	}
	return id, nil
}
