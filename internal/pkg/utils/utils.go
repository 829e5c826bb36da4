package utils

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateConvention names the layout a caller declares for a free-form date.
// The layout is never sniffed from the string itself: "03/04/2025" is a
// valid date under more than one convention.
type DateConvention string

const (
	DateISO DateConvention = "iso" // 2025-09-15
	DateUS  DateConvention = "us"  // 09/15/2025
)

const (
	isoLayout        = "2006-01-02"
	usLayout         = "01/02/2006"
	dayMonthYear     = "02/01/2006"
	timeOfDayLayout  = "3:04 PM"
	durationHourUnit = "h"
	durationMinUnit  = "m"
)

var ErrUnknownDateConvention = errors.New("unknown date convention")

// ParseDate parses value using the layout of the declared convention.
func ParseDate(value string, convention DateConvention) (time.Time, error) {
	var layout string

	switch convention {
	case DateISO:
		layout = isoLayout
	case DateUS:
		layout = usLayout
	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownDateConvention, convention)
	}

	t, err := time.Parse(layout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %s date %q: %w", convention, value, err)
	}

	return t, nil
}

// FormatDate converts a date in the declared convention to day/month/year.
// Example: ("2025-09-15", DateISO) -> "15/09/2025", ("09/15/2025", DateUS) -> "15/09/2025"
func FormatDate(value string, convention DateConvention) (string, error) {
	t, err := ParseDate(value, convention)
	if err != nil {
		return "", err
	}

	return t.Format(dayMonthYear), nil
}

// FormatTimeOfDay converts epoch seconds to a wall clock time in UTC.
// Example: 1757925000 -> "8:30 AM"
func FormatTimeOfDay(epochSeconds int64) string {
	return time.Unix(epochSeconds, 0).UTC().Format(timeOfDayLayout)
}

// ConvertMinutesToDuration convert minutes to duration format string
// Example: 125 -> "2h 5m"
func ConvertMinutesToDuration(durationInMinutes int64) string {

	h := durationInMinutes / 60
	m := durationInMinutes % 60

	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}

	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}

	return fmt.Sprintf("%dh %dm", h, m)
}

// ConvertDurationToMinutes convert duration format string to minutes
// Example: "2h 30m" -> 150, "45m" -> 45, "6h" -> 360. Unparseable parts count as zero.
func ConvertDurationToMinutes(duration string) int64 {
	var total int64

	for _, part := range strings.Fields(duration) {
		switch {
		case strings.HasSuffix(part, durationHourUnit):
			h, err := strconv.ParseInt(strings.TrimSuffix(part, durationHourUnit), 10, 64)
			if err == nil {
				total += h * 60
			}
		case strings.HasSuffix(part, durationMinUnit):
			m, err := strconv.ParseInt(strings.TrimSuffix(part, durationMinUnit), 10, 64)
			if err == nil {
				total += m
			}
		}
	}

	return total
}

// ConvertSecondsToMinutes rounds a duration in seconds to whole minutes.
func ConvertSecondsToMinutes(seconds int64) int64 {
	return int64(math.Round(float64(seconds) / 60))
}

// CalculatePoints converts a cash price to its loyalty point equivalent.
// Example: (189, 200) -> 37800
func CalculatePoints(price float64, multiplier float64) int {
	if price <= 0 || multiplier <= 0 {
		return 0
	}

	return int(math.Round(price * multiplier))
}

// CalculateCashValue converts points to dollars at a value in cents per point.
// Example: (125000, 1.25) -> 1562.5
func CalculateCashValue(points int, centsPerPoint float64) float64 {
	if points <= 0 || centsPerPoint <= 0 {
		return 0
	}

	return math.Round(float64(points)*centsPerPoint) / 100
}

// FormatUSD renders a dollar amount with thousands separators.
// Example: 1234.5 -> "$1,234.50", 456 -> "$456"
func FormatUSD(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	cents := int64(math.Round(amount * 100))
	whole := cents / 100
	frac := cents % 100

	var result []byte
	str := strconv.FormatInt(whole, 10)

	count := 0
	for i := len(str) - 1; i >= 0; i-- {
		result = append([]byte{str[i]}, result...)
		count++
		if count%3 == 0 && i != 0 {
			result = append([]byte{','}, result...)
		}
	}

	formatted := "$" + string(result)
	if frac != 0 {
		formatted += fmt.Sprintf(".%02d", frac)
	}

	if negative {
		return "-" + formatted
	}
	return formatted
}
