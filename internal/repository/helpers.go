package repository

import "strings"

// placeholders builds the "?, ?, ?" fragment for an IN clause.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// appendDateRange narrows a query by an optional from/to date pair.
// Dates arrive as report filter strings (YYYY-MM-DD); date() keeps the
// comparison valid against timestamps stored by the driver.
func appendDateRange(query string, args []interface{}, column, fromDate, toDate string) (string, []interface{}) {
	if fromDate != "" {
		query += " AND date(" + column + ") >= date(?)"
		args = append(args, fromDate)
	}
	if toDate != "" {
		query += " AND date(" + column + ") <= date(?)"
		args = append(args, toDate)
	}
	return query, args
}
