package interfaces

import "lims_service/internal/domain/entities"

// IEntityAccessor exposes the already-fetched entity caches.
//
// Every call is synchronous and returns a copy of the current snapshot; callers may
// filter or sort the result freely. Lookups that miss return ok=false instead of an error.
type IEntityAccessor interface {
	GetWorkOrderHeaders() []entities.WorkOrderHeader
	GetWorkOrderLinesByHeaderID(headerID int64) []entities.WorkOrderLine
	GetCheckOutRecords() []entities.CheckOutRecord
	GetCheckedInSamples() []entities.CheckInRecord
	GetCustomers() []entities.Customer
	GetImportRecords() []entities.ImportRecord
	GetCompanyByID(id int64) (entities.Company, bool)
	GetActiveCompanies() []entities.Company
}
