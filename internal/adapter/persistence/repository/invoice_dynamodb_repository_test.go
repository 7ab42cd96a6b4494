package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"lims_service/internal/domain/entities"
	"lims_service/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInvoice(id string, issuedAt time.Time) entities.Invoice {
	return entities.Invoice{
		ID:            id,
		InvoiceNumber: "INV-2024-0001",
		CompanyID:     1,
		CompanyName:   "Acme Gas",
		CompanyEmail:  "billing@acme.test",
		WorkOrderIDs:  []int64{10, 12},
		Totals:        entities.InvoiceTotals{Subtotal: 150, AdditionalFees: 15, Total: 165},
		Status:        entities.InvoiceStatusIssued,
		IssuedBy:      "maria",
		IssuedAt:      issuedAt,
	}
}

// newIssuingRepo seeds headers 10 and 12 (Pending) and 11 (Invoiced) next to an empty
// invoices table.
func newIssuingRepo(t *testing.T) (*InvoiceDynamoRepository, *SourceDynamoRepository, *fakeDynamo) {
	t.Helper()
	ddb := newFakeDynamo()
	source := NewSourceDynamoRepository(ddb, SourceTables{}, nil)
	fx := seedFixture()
	fx.Headers = append(fx.Headers, entities.WorkOrderHeader{
		ID: 12, WorkOrderNumber: "WO-12", CompanyID: 1, Date: "2024-06-11", Status: entities.WorkOrderStatusCompleted,
	})
	require.NoError(t, source.Seed(context.Background(), fx))
	return NewInvoiceDynamoRepository(ddb, "", "", nil), source, ddb
}

func headerStatus(t *testing.T, source *SourceDynamoRepository, id int64) entities.WorkOrderStatus {
	t.Helper()
	h, ok, err := source.GetWorkOrderHeader(context.Background(), id)
	require.NoError(t, err)
	require.True(t, ok, "header %d", id)
	return h.Status
}

func TestInvoiceDynamoRepository_IssueGet(t *testing.T) {
	repo, source, _ := newIssuingRepo(t)
	ctx := context.Background()
	inv := sampleInvoice("inv-1", time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC))

	_, err := repo.Issue(ctx, inv)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, inv, got)
	assert.Equal(t, entities.WorkOrderStatusInvoiced, headerStatus(t, source, 10))
	assert.Equal(t, entities.WorkOrderStatusInvoiced, headerStatus(t, source, 12))

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Equal(t, entities.Invoice{}, missing)
}

func TestInvoiceDynamoRepository_IssueSameOrdersTwice(t *testing.T) {
	repo, source, _ := newIssuingRepo(t)
	ctx := context.Background()

	_, err := repo.Issue(ctx, sampleInvoice("inv-1", time.Now()))
	require.NoError(t, err)

	second := sampleInvoice("inv-2", time.Now())
	second.InvoiceNumber = "INV-2024-0002"
	_, err = repo.Issue(ctx, second)
	require.Error(t, err)
	assert.True(t, errors.Is(err, interfaces.ErrWorkOrderNotInvoiceable))
	assert.Contains(t, err.Error(), "work order 10")

	got, err := repo.GetByID(ctx, "inv-2")
	require.NoError(t, err)
	assert.Equal(t, "", got.ID, "a rejected issuance must not leave an invoice behind")
	assert.Equal(t, entities.WorkOrderStatusInvoiced, headerStatus(t, source, 10))
}

func TestInvoiceDynamoRepository_IssueIsAllOrNothing(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		ids     []int64
		wantErr error
	}{
		{"already invoiced header", []int64{10, 11}, interfaces.ErrWorkOrderNotInvoiceable},
		{"missing header", []int64{10, 999}, interfaces.ErrWorkOrderNotInvoiceable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, source, _ := newIssuingRepo(t)
			inv := sampleInvoice("inv-1", time.Now())
			inv.WorkOrderIDs = tt.ids

			_, err := repo.Issue(ctx, inv)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			got, err := repo.GetByID(ctx, "inv-1")
			require.NoError(t, err)
			assert.Equal(t, "", got.ID)
			assert.Equal(t, entities.WorkOrderStatusPending, headerStatus(t, source, 10), "header 10 must stay untouched")
		})
	}

	t.Run("taken invoice id", func(t *testing.T) {
		repo, source, _ := newIssuingRepo(t)
		_, err := repo.Issue(ctx, sampleInvoice("inv-1", time.Now()))
		require.NoError(t, err)

		again := sampleInvoice("inv-1", time.Now())
		again.WorkOrderIDs = []int64{10}
		_, err = repo.Issue(ctx, again)
		assert.True(t, errors.Is(err, ErrRecordExists), "got %v", err)
		assert.Equal(t, entities.WorkOrderStatusInvoiced, headerStatus(t, source, 12))
	})

	t.Run("transport failure", func(t *testing.T) {
		repo, source, ddb := newIssuingRepo(t)
		ddb.failTransact = errFakeUnavailable

		_, err := repo.Issue(ctx, sampleInvoice("inv-1", time.Now()))
		assert.True(t, errors.Is(err, errFakeUnavailable), "got %v", err)
		assert.False(t, errors.Is(err, interfaces.ErrWorkOrderNotInvoiceable))
		assert.Equal(t, entities.WorkOrderStatusPending, headerStatus(t, source, 10))
	})
}

func TestInvoiceDynamoRepository_IssueRejectsInvalid(t *testing.T) {
	repo, _, _ := newIssuingRepo(t)
	inv := sampleInvoice("inv-1", time.Now())
	inv.WorkOrderIDs = nil

	_, err := repo.Issue(context.Background(), inv)
	assert.True(t, errors.Is(err, ErrInvalidRecord))

	inv.WorkOrderIDs = make([]int64, maxTransactItems)
	for i := range inv.WorkOrderIDs {
		inv.WorkOrderIDs[i] = int64(i + 1)
	}
	_, err = repo.Issue(context.Background(), inv)
	assert.True(t, errors.Is(err, ErrInvalidRecord))
}

func TestInvoiceDynamoRepository_ListNewestFirst(t *testing.T) {
	repo := NewInvoiceDynamoRepository(newFakeDynamo(), "", "", nil)
	ctx := context.Background()
	base := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.table.Put(ctx, sampleInvoice(id, base.Add(time.Duration(i)*time.Hour)), true))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{list[0].ID, list[1].ID, list[2].ID})
}

func TestInvoiceDynamoRepository_UpdateStatus(t *testing.T) {
	repo, _, _ := newIssuingRepo(t)
	ctx := context.Background()
	_, err := repo.Issue(ctx, sampleInvoice("inv-1", time.Now()))
	require.NoError(t, err)

	updated, err := repo.UpdateStatus(ctx, "inv-1", entities.InvoiceStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, entities.InvoiceStatusPaid, updated.Status)
	assert.Equal(t, 165.0, updated.Totals.Total)

	missing, err := repo.UpdateStatus(ctx, "nope", entities.InvoiceStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, "", missing.ID)
}

func TestInvoiceCounterDynamoRepository_Next(t *testing.T) {
	repo := NewInvoiceCounterDynamoRepository(newFakeDynamo(), "")
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := repo.Next(ctx, 2024)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	got, err := repo.Next(ctx, 2025)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got, "each year starts its own sequence")
}

func TestInvoicePaymentDynamoRepository(t *testing.T) {
	repo := NewInvoicePaymentDynamoRepository(newFakeDynamo(), "", nil)
	ctx := context.Background()
	base := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	second := entities.InvoicePayment{ID: "p2", InvoiceID: "inv-1", Amount: 165, Date: base.Add(time.Hour), Status: entities.PaymentStatusPaid, MPPayloadRaw: []byte(`{"id":"p2"}`)}
	first := entities.InvoicePayment{ID: "p1", InvoiceID: "inv-1", Amount: 165, Date: base, Status: entities.PaymentStatusDenied}
	other := entities.InvoicePayment{ID: "p3", InvoiceID: "inv-2", Amount: 10, Date: base, Status: entities.PaymentStatusPending}
	for _, p := range []entities.InvoicePayment{second, first, other} {
		_, err := repo.Create(ctx, p)
		require.NoError(t, err)
	}

	got, err := repo.GetByID(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentStatusPaid, got.Status)
	assert.JSONEq(t, `{"id":"p2"}`, string(got.MPPayloadRaw))

	list, err := repo.ListByInvoiceID(ctx, "inv-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "p1", list[0].ID)
	assert.Equal(t, "p2", list[1].ID)
}
