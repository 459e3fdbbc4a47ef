package models

// TargetDocType is the closed set of downstream document types a job
// record's items can be pulled into.
type TargetDocType string

const (
	TargetPurchaseOrder   TargetDocType = "Purchase Order"
	TargetPurchaseInvoice TargetDocType = "Purchase Invoice"
	TargetSalesOrder      TargetDocType = "Sales Order"
	TargetSalesInvoice    TargetDocType = "Sales Invoice"
	TargetQuotation       TargetDocType = "Quotation"
)

// TargetDocTypes lists the supported target document types in their
// canonical order.
var TargetDocTypes = []TargetDocType{
	TargetPurchaseOrder,
	TargetPurchaseInvoice,
	TargetSalesOrder,
	TargetSalesInvoice,
	TargetQuotation,
}

// Valid reports whether t is one of the supported target types.
func (t TargetDocType) Valid() bool {
	switch t {
	case TargetPurchaseOrder, TargetPurchaseInvoice, TargetSalesOrder, TargetSalesInvoice, TargetQuotation:
		return true
	}
	return false
}

func (t TargetDocType) String() string {
	return string(t)
}
