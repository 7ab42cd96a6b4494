package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"lims_service/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	headers   []entities.WorkOrderHeader
	lines     []entities.WorkOrderLine
	checkIns  []entities.CheckInRecord
	checkOuts []entities.CheckOutRecord
	imports   []entities.ImportRecord
	companies []entities.Company
	failLines error
}

func (f *fakeSource) WorkOrderHeaders(context.Context) ([]entities.WorkOrderHeader, error) {
	return f.headers, nil
}

func (f *fakeSource) WorkOrderLines(context.Context) ([]entities.WorkOrderLine, error) {
	return f.lines, f.failLines
}

func (f *fakeSource) CheckIns(context.Context) ([]entities.CheckInRecord, error) {
	return f.checkIns, nil
}

func (f *fakeSource) CheckOuts(context.Context) ([]entities.CheckOutRecord, error) {
	return f.checkOuts, nil
}

func (f *fakeSource) Imports(context.Context) ([]entities.ImportRecord, error) {
	return f.imports, nil
}

func (f *fakeSource) Companies(context.Context) ([]entities.Company, error) {
	return f.companies, nil
}

func newFakeSource() *fakeSource {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	return &fakeSource{
		headers: []entities.WorkOrderHeader{
			{ID: 1, WorkOrderNumber: "WO-1", CompanyID: 1, Status: entities.WorkOrderStatusPending},
			{ID: 2, WorkOrderNumber: "WO-2", CompanyID: 2, Status: entities.WorkOrderStatusCompleted},
		},
		lines: []entities.WorkOrderLine{
			{ID: 10, HeaderID: 1, Price: 100},
			{ID: 11, HeaderID: 1, Price: 50},
			{ID: 12, HeaderID: 2, Price: 200},
		},
		checkIns:  []entities.CheckInRecord{{ID: 1, CompanyID: 1, CheckInTime: now}},
		checkOuts: []entities.CheckOutRecord{{ID: 1, Barcode: "CYL-1", CreatedAt: now}},
		imports:   []entities.ImportRecord{{ID: 1, Status: entities.ImportStatusValidated}},
		companies: []entities.Company{
			{ID: 1, CompanyName: "Acme Gas", Email: "a@acme.test", Active: true},
			{ID: 2, CompanyName: "Borealis", Active: false},
		},
	}
}

func TestEntityStore_Accessors(t *testing.T) {
	obs := &recordingObserver{}
	s := NewEntityStore(newFakeSource(), obs, nil)
	assert.False(t, s.Ready())

	require.NoError(t, s.RefreshAll(context.Background()))
	assert.True(t, s.Ready())
	assert.Len(t, obs.calls, 6)

	assert.Len(t, s.GetWorkOrderHeaders(), 2)
	assert.Len(t, s.GetWorkOrderLinesByHeaderID(1), 2)
	assert.Len(t, s.GetWorkOrderLinesByHeaderID(2), 1)
	assert.Empty(t, s.GetWorkOrderLinesByHeaderID(99))
	assert.Len(t, s.GetCheckedInSamples(), 1)
	assert.Len(t, s.GetCheckOutRecords(), 1)
	assert.Len(t, s.GetImportRecords(), 1)
	assert.Equal(t, []entities.Customer{{ID: 1, Name: "Acme Gas"}, {ID: 2, Name: "Borealis"}}, s.GetCustomers())

	c, ok := s.GetCompanyByID(1)
	require.True(t, ok)
	assert.Equal(t, "a@acme.test", c.Email)

	_, ok = s.GetCompanyByID(42)
	assert.False(t, ok)

	active := s.GetActiveCompanies()
	require.Len(t, active, 1)
	assert.Equal(t, int64(1), active[0].ID)
}

func TestEntityStore_EmptyBeforeLoad(t *testing.T) {
	s := NewEntityStore(newFakeSource(), nil, nil)

	assert.NotNil(t, s.GetWorkOrderHeaders())
	assert.Empty(t, s.GetWorkOrderHeaders())
	assert.Empty(t, s.GetCustomers())
	_, ok := s.GetCompanyByID(1)
	assert.False(t, ok)
}

func TestEntityStore_PartialFailure(t *testing.T) {
	src := newFakeSource()
	src.failLines = errors.New("throttled")
	s := NewEntityStore(src, nil, nil)

	err := s.RefreshAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "work_order_lines")

	assert.False(t, s.Ready())
	assert.Len(t, s.GetWorkOrderHeaders(), 2, "other caches still load")
	assert.Empty(t, s.GetWorkOrderLinesByHeaderID(1))
}
