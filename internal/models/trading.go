package models

import "time"

// Order statuses used by the percent fulfillment updaters. Anything but
// Cancelled counts toward fulfillment.
const OrderStatusCancelled = "Cancelled"

// PurchaseOrder is a downstream procurement document linked to a job record.
type PurchaseOrder struct {
	Name        string    `json:"name"`
	JobRecord   string    `json:"custom_job_record"`
	Status      string    `json:"status"`
	PerReceived float64   `json:"per_received"`
	TotalQty    float64   `json:"total_qty"`
	PostingDate time.Time `json:"posting_date"`
	Docstatus   int       `json:"docstatus"`
}

// SalesOrder is a downstream sales document linked to a job record.
type SalesOrder struct {
	Name         string    `json:"name"`
	JobRecord    string    `json:"custom_job_record"`
	Status       string    `json:"status"`
	PerDelivered float64   `json:"per_delivered"`
	PostingDate  time.Time `json:"posting_date"`
	Docstatus    int       `json:"docstatus"`
}

// DocumentItem is a line item of any of the five downstream document
// types (orders, invoices, quotations). The vehicle tag links invoice
// lines to fleet vehicles for the P/L reports.
type DocumentItem struct {
	ID         int64   `json:"id"`
	Parent     string  `json:"parent"`
	ParentType string  `json:"parenttype"`
	Idx        int     `json:"idx"`
	ItemCode   string  `json:"item_code"`
	ItemName   string  `json:"item_name"`
	Qty        float64 `json:"qty"`
	UOM        string  `json:"uom"`
	Rate       float64 `json:"rate"`
	Amount     float64 `json:"amount"`
	BaseAmount float64 `json:"base_amount"`
	Vehicle    string  `json:"custom_vehicle"`
}

// Quotation is an offer made to a customer.
type Quotation struct {
	Name        string    `json:"name"`
	QuotationTo string    `json:"quotation_to"`
	PartyName   string    `json:"party_name"`
	GrandTotal  float64   `json:"grand_total"`
	Docstatus   int       `json:"docstatus"`
	CreatedAt   time.Time `json:"created_at"`
}

// QuotationItemOut is a quotation line item tagged with its source
// quotation, as returned by the multi-quotation aggregator.
type QuotationItemOut struct {
	ItemCode string  `json:"item_code"`
	ItemName string  `json:"item_name"`
	UOM      string  `json:"uom"`
	Qty      float64 `json:"qty"`
	Rate     float64 `json:"rate"`
	Amount   float64 `json:"amount"`
	Parent   string  `json:"parent"`
}
