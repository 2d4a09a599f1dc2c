package enum

// InvoiceStatus represents the lifecycle state of a sales invoice
type InvoiceStatus int

const (
	// InvoiceStatusDraft is the initial, editable state
	InvoiceStatusDraft InvoiceStatus = iota
	// InvoiceStatusSubmitted is the final state. Submission is irreversible;
	// a submitted invoice only accepts QR-code updates.
	InvoiceStatusSubmitted
)

// String returns the string representation of the invoice status
func (s InvoiceStatus) String() string {
	switch s {
	case InvoiceStatusDraft:
		return "Draft"
	case InvoiceStatusSubmitted:
		return "Submitted"
	default:
		return "Unknown"
	}
}
