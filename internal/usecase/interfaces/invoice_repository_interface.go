package interfaces

import (
	"context"
	"errors"
	"lims_service/internal/domain/entities"
)

// ErrWorkOrderNotInvoiceable is wrapped by Issue when a selected header is missing or was
// already Invoiced at write time.
var ErrWorkOrderNotInvoiceable = errors.New("work order not invoiceable")

// IInvoiceRepository abstracts DynamoDB persistence for issued invoices.
//
// Issue stores the invoice and flips its work orders to Invoiced atomically: either every
// write lands or none does.
//
// Not-found reads return a zero Invoice and a nil error; the use case turns that into
// ErrInvoiceNotFound.
type IInvoiceRepository interface {
	Issue(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context) ([]entities.Invoice, error)
	UpdateStatus(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error)
}
