package utils

import (
	"fmt"
	"time"
)

// ValidateDate validates a YYYY-MM-DD date string.
func ValidateDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid date format, expected YYYY-MM-DD: %s", date)
	}
	return nil
}
