package interfaces

// IInvoiceMetrics records invoice outcomes. Implementations must tolerate concurrent calls.
type IInvoiceMetrics interface {
	InvoiceIssued(total float64)
	InvoiceRejected(reason string)
}
