package models

import "time"

// JobRecord is a unit of customer work. Its requested items are later
// fulfilled through downstream orders and invoices; the percent fields
// are recomputed from those documents.
type JobRecord struct {
	Name             string    `json:"name"`
	Date             time.Time `json:"date"`
	Company          string    `json:"company"`
	Customer         string    `json:"customer"`
	TotalQuantity    float64   `json:"total_quantity"`
	PercentReceived  float64   `json:"percent_received"`
	PercentDelivered float64   `json:"percent_delivered"`
	Docstatus        int       `json:"docstatus"`

	Items       []*JobItem       `json:"items"`
	Assignments []*JobAssignment `json:"assignments"`
}

// JobItem is a requested line item on a job record.
type JobItem struct {
	ID       int64   `json:"id"`
	Parent   string  `json:"parent"`
	Idx      int     `json:"idx"`
	Item     string  `json:"item"`
	ItemName string  `json:"item_name"`
	Quantity float64 `json:"quantity"`
	UOM      string  `json:"uom"`
	Rate     float64 `json:"rate"`
}

// JobAssignment assigns a vehicle and driver to a job record trip.
type JobAssignment struct {
	ID         int64   `json:"id"`
	Parent     string  `json:"parent"`
	Idx        int     `json:"idx"`
	Vehicle    string  `json:"vehicle"`
	Driver     string  `json:"driver"`
	DriverName string  `json:"driver_name"`
	DriverType string  `json:"driver_type"`
	TripAmount float64 `json:"trip_amount"`
}

// RemainingItem is an item quantity on a job record not yet covered by
// submitted downstream documents.
type RemainingItem struct {
	ItemCode string  `json:"item_code"`
	ItemName string  `json:"item_name"`
	Qty      float64 `json:"qty"`
	UOM      string  `json:"uom"`
	Rate     float64 `json:"rate"`
}
