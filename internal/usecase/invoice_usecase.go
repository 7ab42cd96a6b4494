package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"lims_service/internal/domain/entities"
	"lims_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvoiceNotFound            = errors.New("invoice not found")
	ErrInvalidInvoiceID           = errors.New("invalid invoice id")
	ErrInvalidIssuedBy            = errors.New("invalid issued_by")
	ErrInvoiceNumbersNotAvailable = errors.New("invoice number generator not configured")
)

// ValidationError rejects an invoice request. Reason is shown to the user as-is.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

var (
	ErrNoOrdersSelected     = &ValidationError{Reason: "no orders selected"}
	ErrMultipleCompanies    = &ValidationError{Reason: "multiple companies"}
	ErrOrderNotFound        = &ValidationError{Reason: "work order not found"}
	ErrOrderAlreadyInvoiced = &ValidationError{Reason: "work order already invoiced"}
	ErrTooManyOrders        = &ValidationError{Reason: "too many orders"}
)

// MaxInvoiceOrders is how many work orders fit on one invoice.
const MaxInvoiceOrders = 99

// InvoiceFilter selects candidate orders when no explicit ids are given. Dates use MM-DD-YYYY and only apply when both
// bounds are present and valid; CompanyID 0 means any company.
type InvoiceFilter struct {
	CompanyID int64
	DateFrom  string
	DateTo    string
}

type IssueInvoiceCommand struct {
	WorkOrderIDs []int64
	IssuedBy     string
	Notes        string
}

// InvoicePreview is what the invoicing screen shows before the user confirms.
type InvoicePreview struct {
	Orders       []entities.WorkOrder   `json:"orders"`
	Totals       entities.InvoiceTotals `json:"totals"`
	CompanyID    int64                  `json:"company_id"`
	CompanyName  string                 `json:"company_name"`
	CompanyEmail string                 `json:"company_email"`
	Valid        bool                   `json:"valid"`
	Reason       string                 `json:"reason,omitempty"`
}

// IInvoiceUseCase exposes invoice computation and issuance.
type IInvoiceUseCase interface {
	GetUninvoicedOrders() []entities.WorkOrder
	GetFilteredOrders(orders []entities.WorkOrder, filter InvoiceFilter) []entities.WorkOrder
	CalculateInvoiceTotals(orders []entities.WorkOrder) entities.InvoiceTotals
	ValidateInvoiceGeneration(orders []entities.WorkOrder) error
	GenerateInvoiceNumber(ctx context.Context) (string, error)
	ResolveCompany(id int64) (name string, email string)
	PreviewInvoice(filter InvoiceFilter, workOrderIDs []int64) InvoicePreview
	ListActiveCompanies() []entities.Company
	IssueInvoice(ctx context.Context, cmd IssueInvoiceCommand) (entities.Invoice, error)
	GetInvoice(ctx context.Context, id string) (entities.Invoice, error)
	ListInvoices(ctx context.Context) ([]entities.Invoice, error)
}

type InvoiceUseCase struct {
	accessor     interfaces.IEntityAccessor
	repo         interfaces.IInvoiceRepository
	numbers      interfaces.IInvoiceNumberGenerator
	headerReader interfaces.IWorkOrderHeaderReader
	notifier     interfaces.IRefreshNotifier
	metrics      interfaces.IInvoiceMetrics
	now          func() time.Time
	logger       *zap.Logger
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(
	accessor interfaces.IEntityAccessor,
	repo interfaces.IInvoiceRepository,
	numbers interfaces.IInvoiceNumberGenerator,
	headerReader interfaces.IWorkOrderHeaderReader,
	notifier interfaces.IRefreshNotifier,
	metrics interfaces.IInvoiceMetrics,
	logger *zap.Logger,
) *InvoiceUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvoiceUseCase{
		accessor:     accessor,
		repo:         repo,
		numbers:      numbers,
		headerReader: headerReader,
		notifier:     notifier,
		metrics:      metrics,
		now:          time.Now,
		logger:       logger,
	}
}

// WithClock replaces the wall clock used for invoice numbers and issue dates.
func (u *InvoiceUseCase) WithClock(now func() time.Time) *InvoiceUseCase {
	u.now = now
	return u
}

// GetUninvoicedOrders joins every non-invoiced header with its lines.
func (u *InvoiceUseCase) GetUninvoicedOrders() []entities.WorkOrder {
	orders := make([]entities.WorkOrder, 0)
	for _, h := range u.accessor.GetWorkOrderHeaders() {
		if h.Status == entities.WorkOrderStatusInvoiced {
			continue
		}
		orders = append(orders, entities.WorkOrder{Header: h, Lines: u.accessor.GetWorkOrderLinesByHeaderID(h.ID)})
	}
	return orders
}

func (u *InvoiceUseCase) GetFilteredOrders(orders []entities.WorkOrder, filter InvoiceFilter) []entities.WorkOrder {
	return FilterOrders(orders, filter)
}

func (u *InvoiceUseCase) CalculateInvoiceTotals(orders []entities.WorkOrder) entities.InvoiceTotals {
	return CalculateInvoiceTotals(orders)
}

func (u *InvoiceUseCase) ValidateInvoiceGeneration(orders []entities.WorkOrder) error {
	return ValidateInvoiceGeneration(orders)
}

// GenerateInvoiceNumber returns INV-{year}-{sequence}, the sequence zero-padded to four digits.
func (u *InvoiceUseCase) GenerateInvoiceNumber(ctx context.Context) (string, error) {
	if u.numbers == nil {
		return "", ErrInvoiceNumbersNotAvailable
	}
	year := u.now().UTC().Year()
	seq, err := u.numbers.Next(ctx, year)
	if err != nil {
		return "", fmt.Errorf("next invoice sequence: %w", err)
	}
	return FormatInvoiceNumber(year, seq), nil
}

func FormatInvoiceNumber(year int, seq int64) string {
	return fmt.Sprintf("INV-%d-%04d", year, seq)
}

// ResolveCompany never fails: unknown ids render as "Unknown Company" with no email.
func (u *InvoiceUseCase) ResolveCompany(id int64) (string, string) {
	c, ok := u.accessor.GetCompanyByID(id)
	if !ok {
		return unknownCompanyName, ""
	}
	name := c.CompanyName
	if name == "" {
		name = unknownCompanyName
	}
	return name, c.Email
}

// PreviewInvoice uses workOrderIDs when any are given, otherwise every order that passes filter.
// Unknown or Invoiced ids make the preview invalid instead of being dropped.
func (u *InvoiceUseCase) PreviewInvoice(filter InvoiceFilter, workOrderIDs []int64) InvoicePreview {
	var orders []entities.WorkOrder
	if len(workOrderIDs) > 0 {
		selected, err := u.selectOrders(workOrderIDs)
		if err != nil {
			return InvoicePreview{Orders: []entities.WorkOrder{}, Reason: err.Error()}
		}
		orders = selected
	} else {
		orders = FilterOrders(u.GetUninvoicedOrders(), filter)
	}

	preview := InvoicePreview{
		Orders: orders,
		Totals: CalculateInvoiceTotals(orders),
		Valid:  true,
	}
	if err := ValidateInvoiceGeneration(orders); err != nil {
		preview.Valid = false
		preview.Reason = err.Error()
		return preview
	}
	preview.CompanyID = orders[0].Header.CompanyID
	preview.CompanyName, preview.CompanyEmail = u.ResolveCompany(preview.CompanyID)
	return preview
}

// ListActiveCompanies feeds the company picker on the invoicing screen, sorted by name.
func (u *InvoiceUseCase) ListActiveCompanies() []entities.Company {
	companies := u.accessor.GetActiveCompanies()
	sort.SliceStable(companies, func(i, j int) bool {
		return strings.ToLower(companies[i].CompanyName) < strings.ToLower(companies[j].CompanyName)
	})
	return companies
}

// IssueInvoice validates the selection against the source table, then stores the invoice and
// marks its orders Invoiced in a single write.
func (u *InvoiceUseCase) IssueInvoice(ctx context.Context, cmd IssueInvoiceCommand) (entities.Invoice, error) {
	issuedBy := strings.TrimSpace(cmd.IssuedBy)
	if issuedBy == "" {
		return entities.Invoice{}, ErrInvalidIssuedBy
	}

	orders, err := u.selectOrders(cmd.WorkOrderIDs)
	if err == nil {
		err = u.confirmOrders(ctx, orders)
	}
	if err != nil {
		u.reject(err)
		return entities.Invoice{}, err
	}
	if err := ValidateInvoiceGeneration(orders); err != nil {
		u.reject(err)
		return entities.Invoice{}, err
	}

	number, err := u.GenerateInvoiceNumber(ctx)
	if err != nil {
		u.logger.Error("[invoice][usecase] invoice number failed", zap.Error(err))
		return entities.Invoice{}, err
	}

	companyID := orders[0].Header.CompanyID
	name, email := u.ResolveCompany(companyID)
	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.Header.ID)
	}

	inv := entities.Invoice{
		ID:            uuid.NewString(),
		InvoiceNumber: number,
		CompanyID:     companyID,
		CompanyName:   name,
		CompanyEmail:  email,
		WorkOrderIDs:  ids,
		Totals:        CalculateInvoiceTotals(orders),
		Status:        entities.InvoiceStatusIssued,
		Notes:         strings.TrimSpace(cmd.Notes),
		IssuedBy:      issuedBy,
		IssuedAt:      u.now().UTC(),
	}

	created, err := u.repo.Issue(ctx, inv)
	if err != nil {
		if errors.Is(err, interfaces.ErrWorkOrderNotInvoiceable) {
			err = fmt.Errorf("%w: %w", ErrOrderAlreadyInvoiced, err)
			u.reject(err)
			return entities.Invoice{}, err
		}
		u.logger.Error("[invoice][usecase] invoice issue failed", zap.String("invoice_number", number), zap.Error(err))
		return entities.Invoice{}, fmt.Errorf("issue invoice: %w", err)
	}

	if u.notifier != nil {
		if err := u.notifier.Publish(ctx, "invoice issued"); err != nil {
			u.logger.Warn("[invoice][usecase] refresh publish failed", zap.Error(err))
		}
	}
	if u.metrics != nil {
		u.metrics.InvoiceIssued(created.Totals.Total)
	}

	u.logger.Info("[invoice][usecase] invoice issued",
		zap.String("invoice_id", created.ID),
		zap.String("invoice_number", created.InvoiceNumber),
		zap.Int64("company_id", created.CompanyID),
		zap.Int("orders", len(ids)),
		zap.Float64("total", created.Totals.Total),
	)
	return created, nil
}

func (u *InvoiceUseCase) GetInvoice(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) ListInvoices(ctx context.Context) ([]entities.Invoice, error) {
	return u.repo.List(ctx)
}

func (u *InvoiceUseCase) selectOrders(ids []int64) ([]entities.WorkOrder, error) {
	byID := make(map[int64]entities.WorkOrderHeader)
	for _, h := range u.accessor.GetWorkOrderHeaders() {
		byID[h.ID] = h
	}

	seen := make(map[int64]struct{}, len(ids))
	orders := make([]entities.WorkOrder, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		h, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrOrderNotFound, id)
		}
		if h.Status == entities.WorkOrderStatusInvoiced {
			return nil, fmt.Errorf("%w: %s", ErrOrderAlreadyInvoiced, h.WorkOrderNumber)
		}
		orders = append(orders, entities.WorkOrder{Header: h, Lines: u.accessor.GetWorkOrderLinesByHeaderID(id)})
	}
	return orders, nil
}

// confirmOrders re-reads every header from the source table, since the caches may lag behind
// another instance that just issued an invoice. Fresh headers replace the cached ones.
func (u *InvoiceUseCase) confirmOrders(ctx context.Context, orders []entities.WorkOrder) error {
	if u.headerReader == nil {
		return nil
	}
	for i := range orders {
		id := orders[i].Header.ID
		h, ok, err := u.headerReader.GetWorkOrderHeader(ctx, id)
		if err != nil {
			return fmt.Errorf("read work order %d: %w", id, err)
		}
		if !ok {
			return fmt.Errorf("%w: %d", ErrOrderNotFound, id)
		}
		if h.Status == entities.WorkOrderStatusInvoiced {
			return fmt.Errorf("%w: %s", ErrOrderAlreadyInvoiced, h.WorkOrderNumber)
		}
		orders[i].Header = h
	}
	return nil
}

func (u *InvoiceUseCase) reject(err error) {
	var verr *ValidationError
	if !errors.As(err, &verr) {
		return
	}
	u.logger.Info("[invoice][usecase] invoice rejected", zap.String("reason", verr.Reason))
	if u.metrics != nil {
		u.metrics.InvoiceRejected(verr.Reason)
	}
}

// FilterOrders drops Invoiced orders, then applies the company and date filters.
// A lone date bound is ignored; the range only applies when both bounds parse.
func FilterOrders(orders []entities.WorkOrder, filter InvoiceFilter) []entities.WorkOrder {
	from, okFrom := usToISO(filter.DateFrom)
	to, okTo := usToISO(filter.DateTo)
	useRange := okFrom && okTo

	out := make([]entities.WorkOrder, 0, len(orders))
	for _, o := range orders {
		if o.Header.Status == entities.WorkOrderStatusInvoiced {
			continue
		}
		if filter.CompanyID != 0 && o.Header.CompanyID != filter.CompanyID {
			continue
		}
		if useRange {
			d, ok := parseISODate(o.Header.Date)
			if !ok {
				continue
			}
			iso := d.Format(isoDateLayout)
			if iso < from || iso > to {
				continue
			}
		}
		out = append(out, o)
	}
	return out
}

// CalculateInvoiceTotals sums exactly; rounding to cents is left to presentation.
func CalculateInvoiceTotals(orders []entities.WorkOrder) entities.InvoiceTotals {
	subtotal := decimal.Zero
	fees := decimal.Zero
	for _, o := range orders {
		for _, l := range o.Lines {
			subtotal = subtotal.Add(decimal.NewFromFloat(l.Price))
		}
		fees = fees.
			Add(decimal.NewFromFloat(o.Header.MileageFee)).
			Add(decimal.NewFromFloat(o.Header.MiscellaneousCharges)).
			Add(decimal.NewFromFloat(o.Header.HourlyFee))
	}
	return entities.InvoiceTotals{
		Subtotal:       subtotal.InexactFloat64(),
		AdditionalFees: fees.InexactFloat64(),
		Total:          subtotal.Add(fees).InexactFloat64(),
	}
}

// ValidateInvoiceGeneration enforces a non-empty, single-company selection.
func ValidateInvoiceGeneration(orders []entities.WorkOrder) error {
	if len(orders) == 0 {
		return ErrNoOrdersSelected
	}
	if len(orders) > MaxInvoiceOrders {
		return ErrTooManyOrders
	}
	company := orders[0].Header.CompanyID
	for _, o := range orders[1:] {
		if o.Header.CompanyID != company {
			return ErrMultipleCompanies
		}
	}
	return nil
}
