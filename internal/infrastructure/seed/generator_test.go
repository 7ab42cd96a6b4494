package seed

import (
	"testing"
	"time"

	"lims_service/internal/adapter/persistence/repository"
	"lims_service/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seedNow = time.Date(2024, 6, 12, 15, 0, 0, 0, time.UTC)

func TestGenerate_IsDeterministic(t *testing.T) {
	a := Generate(DefaultOptions(), seedNow)
	b := Generate(DefaultOptions(), seedNow)
	assert.Equal(t, a, b)

	other := DefaultOptions()
	other.Seed = 7
	assert.NotEqual(t, a.Companies, Generate(other, seedNow).Companies)
}

func TestGenerate_RecordsPassSourceValidation(t *testing.T) {
	data := Generate(DefaultOptions(), seedNow)

	require.Len(t, data.Companies, 8)
	require.Len(t, data.Headers, 60)
	require.Len(t, data.Imports, 20)
	require.NotEmpty(t, data.Lines)
	require.Len(t, data.CheckIns, len(data.Lines))

	for _, c := range data.Companies {
		require.NoError(t, repository.ValidateCompany(c))
	}
	for _, h := range data.Headers {
		require.NoError(t, repository.ValidateWorkOrderHeader(h))
	}
	for _, l := range data.Lines {
		require.NoError(t, repository.ValidateWorkOrderLine(l))
	}
	for _, c := range data.CheckIns {
		require.NoError(t, repository.ValidateCheckIn(c))
	}
	for _, c := range data.CheckOuts {
		require.NoError(t, repository.ValidateCheckOut(c))
	}
	for _, i := range data.Imports {
		require.NoError(t, repository.ValidateImport(i))
	}
}

func TestGenerate_References(t *testing.T) {
	data := Generate(DefaultOptions(), seedNow)

	companies := map[int64]bool{}
	for _, c := range data.Companies {
		companies[c.ID] = true
	}
	headers := map[int64]entities.WorkOrderHeader{}
	for _, h := range data.Headers {
		assert.True(t, companies[h.CompanyID], "header %d company", h.ID)
		headers[h.ID] = h
	}
	cylinders := map[string]bool{}
	for _, l := range data.Lines {
		_, ok := headers[l.HeaderID]
		assert.True(t, ok, "line %d header", l.ID)
		cylinders[l.CylinderNumber] = true
	}
	for _, co := range data.CheckOuts {
		assert.True(t, cylinders[co.Barcode], "check-out %d barcode", co.ID)
	}
	for _, ci := range data.CheckIns {
		assert.False(t, ci.CheckInTime.Before(seedNow.AddDate(0, 0, -180)))
	}
}

func TestGenerate_NoCompanies(t *testing.T) {
	data := Generate(Options{Seed: 1, WorkOrders: 5}, seedNow)
	assert.Empty(t, data.Headers)
	assert.Empty(t, data.Lines)
}

func TestLinePrice(t *testing.T) {
	assert.Equal(t, 150.0, linePrice("GPA 2261", false))
	assert.Equal(t, 375.0, linePrice("Extended Analysis", true))
}
