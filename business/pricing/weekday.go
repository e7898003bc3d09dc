package pricing

import (
	"strings"
	"time"

	"idealPrice/domain"
)

// strptime("%Y-%m-%d") also accepts unpadded months and days
const calculationDateLayout = "2006-1-2"

// ParseCalculationDate parses an ISO YYYY-MM-DD date.
func ParseCalculationDate(value string) (time.Time, error) {
	t, err := time.Parse(calculationDateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, &domain.PricingError{
			Kind:    domain.ErrInvalidDate,
			Message: "Invalid date format. Please use YYYY-MM-DD.",
			Err:     err,
		}
	}

	return t, nil
}

// WeekdayFromDate converts an ISO date to its weekday token.
func WeekdayFromDate(value string) (domain.Weekday, error) {
	t, err := ParseCalculationDate(value)
	if err != nil {
		return "", err
	}

	return domain.WeekdayOf(t), nil
}
