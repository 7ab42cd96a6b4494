package interfaces

import "context"

// IInvoiceNumberGenerator hands out a strictly increasing sequence per calendar year.
type IInvoiceNumberGenerator interface {
	Next(ctx context.Context, year int) (int64, error)
}
