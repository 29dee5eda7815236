package enum

// InvoiceStatus represents the status of an invoice. There is no paid state;
// payment is tracked outside this system.
type InvoiceStatus string

const (
	InvoiceStatusUnpaid   InvoiceStatus = "unpaid"
	InvoiceStatusCanceled InvoiceStatus = "canceled"
)

func (s InvoiceStatus) String() string {
	return string(s)
}
