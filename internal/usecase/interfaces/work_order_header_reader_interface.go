package interfaces

import (
	"context"
	"lims_service/internal/domain/entities"
)

// IWorkOrderHeaderReader reads one header from the source table with a consistent read,
// bypassing the entity caches. ok is false when the header does not exist.
type IWorkOrderHeaderReader interface {
	GetWorkOrderHeader(ctx context.Context, id int64) (header entities.WorkOrderHeader, ok bool, err error)
}
