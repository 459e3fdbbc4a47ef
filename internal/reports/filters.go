package reports

import (
	"strings"

	"github.com/fatehlogistics/erp-backend/pkg/utils"
)

// Filters narrows both P/L reports. Dates are inclusive YYYY-MM-DD
// strings; an empty field means unbounded. The multi-value fields hold
// already-parsed lists.
type Filters struct {
	FromDate   string   `json:"from_date"`
	ToDate     string   `json:"to_date"`
	Vehicles   []string `json:"vehicles"`
	Drivers    []string `json:"drivers"`
	JobRecords []string `json:"job_records"`
	Employee   string   `json:"employee"`
}

// Validate checks the date bounds.
func (f Filters) Validate() error {
	if f.FromDate != "" {
		if err := utils.ValidateDate(f.FromDate); err != nil {
			return err
		}
	}
	if f.ToDate != "" {
		if err := utils.ValidateDate(f.ToDate); err != nil {
			return err
		}
	}
	return nil
}

// ParseMultivalue splits a comma-separated filter value into trimmed,
// non-empty parts.
func ParseMultivalue(value string) []string {
	if value == "" {
		return nil
	}
	var parts []string
	for _, p := range strings.Split(value, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
