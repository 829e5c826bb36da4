package utils

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	formatRequest := func(value string, convention DateConvention, want string, wantErr bool) func(t *testing.T) {
		return func(t *testing.T) {
			got, err := FormatDate(value, convention)
			if (err != nil) != wantErr {
				t.Fatalf("FormatDate() error = %v, wantErr %v", err, wantErr)
			}

			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("FormatDate() mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("iso", formatRequest("2025-09-15", DateISO, "15/09/2025", false))
	t.Run("us", formatRequest("09/15/2025", DateUS, "15/09/2025", false))
	t.Run("us_low_day", formatRequest("03/04/2025", DateUS, "04/03/2025", false))
	t.Run("iso_declared_but_us_given", formatRequest("09/15/2025", DateISO, "", true))
	t.Run("us_declared_but_iso_given", formatRequest("2025-09-15", DateUS, "", true))
	t.Run("impossible_month", formatRequest("15/09/2025", DateUS, "", true))
	t.Run("empty", formatRequest("", DateISO, "", true))
}

func TestParseDate_UnknownConvention(t *testing.T) {
	_, err := ParseDate("2025-09-15", DateConvention("eu"))
	assert.True(t, errors.Is(err, ErrUnknownDateConvention))
}

func TestConvertDurationToMinutes(t *testing.T) {
	durationRequest := func(in string, want int64) func(t *testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, want, ConvertDurationToMinutes(in))
		}
	}

	t.Run("hours_and_minutes", durationRequest("6h 15m", 375))
	t.Run("hours_only", durationRequest("6h", 360))
	t.Run("minutes_only", durationRequest("45m", 45))
	t.Run("garbage", durationRequest("soon", 0))
	t.Run("empty", durationRequest("", 0))
}

func TestConvertMinutesToDuration(t *testing.T) {
	assert.Equal(t, "6h 15m", ConvertMinutesToDuration(375))
	assert.Equal(t, "2h", ConvertMinutesToDuration(120))
	assert.Equal(t, "45m", ConvertMinutesToDuration(45))
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$456", FormatUSD(456))
	assert.Equal(t, "$1,234.50", FormatUSD(1234.5))
	assert.Equal(t, "$1,000,000", FormatUSD(1000000))
	assert.Equal(t, "$0", FormatUSD(0))
	assert.Equal(t, "-$12", FormatUSD(-12))
}

func TestCalculatePoints(t *testing.T) {
	assert.Equal(t, 37800, CalculatePoints(189, 200))
	assert.Equal(t, 25080, CalculatePoints(456, 55))
	assert.Equal(t, 0, CalculatePoints(-1, 200))
	assert.Equal(t, 0, CalculatePoints(100, 0))
}

func TestCalculateCashValue(t *testing.T) {
	assert.Equal(t, 1562.5, CalculateCashValue(125000, 1.25))
	assert.Equal(t, 1440.0, CalculateCashValue(180000, 0.8))
	assert.Equal(t, 0.0, CalculateCashValue(0, 1.4))
	assert.Equal(t, 0.0, CalculateCashValue(45000, -1))
}

func TestFormatTimeOfDay(t *testing.T) {
	// 2025-09-15T08:30:00Z
	assert.Equal(t, "8:30 AM", FormatTimeOfDay(1757925000))
	// 2025-09-15T14:15:00Z
	assert.Equal(t, "2:15 PM", FormatTimeOfDay(1757945700))
}
