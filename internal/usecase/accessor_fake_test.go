package usecase

import "lims_service/internal/domain/entities"

// fakeAccessor serves fixed slices, the way the entity store does after a refresh.
type fakeAccessor struct {
	headers   []entities.WorkOrderHeader
	lines     []entities.WorkOrderLine
	checkIns  []entities.CheckInRecord
	checkOuts []entities.CheckOutRecord
	imports   []entities.ImportRecord
	companies []entities.Company
}

func (f *fakeAccessor) GetWorkOrderHeaders() []entities.WorkOrderHeader {
	return append([]entities.WorkOrderHeader(nil), f.headers...)
}

func (f *fakeAccessor) GetWorkOrderLinesByHeaderID(headerID int64) []entities.WorkOrderLine {
	out := make([]entities.WorkOrderLine, 0)
	for _, l := range f.lines {
		if l.HeaderID == headerID {
			out = append(out, l)
		}
	}
	return out
}

func (f *fakeAccessor) GetCheckOutRecords() []entities.CheckOutRecord {
	return append([]entities.CheckOutRecord(nil), f.checkOuts...)
}

func (f *fakeAccessor) GetCheckedInSamples() []entities.CheckInRecord {
	return append([]entities.CheckInRecord(nil), f.checkIns...)
}

func (f *fakeAccessor) GetCustomers() []entities.Customer {
	out := make([]entities.Customer, 0, len(f.companies))
	for _, c := range f.companies {
		out = append(out, entities.Customer{ID: c.ID, Name: c.CompanyName})
	}
	return out
}

func (f *fakeAccessor) GetImportRecords() []entities.ImportRecord {
	return append([]entities.ImportRecord(nil), f.imports...)
}

func (f *fakeAccessor) GetCompanyByID(id int64) (entities.Company, bool) {
	for _, c := range f.companies {
		if c.ID == id {
			return c, true
		}
	}
	return entities.Company{}, false
}

func (f *fakeAccessor) GetActiveCompanies() []entities.Company {
	out := make([]entities.Company, 0)
	for _, c := range f.companies {
		if c.Active {
			out = append(out, c)
		}
	}
	return out
}
