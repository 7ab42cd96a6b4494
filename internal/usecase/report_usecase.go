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

	"go.uber.org/zap"
	"golang.org/x/text/cases"
)

const (
	// FilterAll disables the status and customer filters.
	FilterAll = "all"

	unknownCompanyName  = "Unknown Company"
	reportArchivePrefix = "reports/analysis"
	csvContentType      = "text/csv"
)

var ErrReportArchiveDisabled = errors.New("report archive not configured")

var reportCSVHeader = []string{
	"Work Order",
	"Customer",
	"Status",
	"Date",
	"Analysis Type",
	"Analysis Number",
	"Cylinder Number",
	"Well Name",
	"Meter Number",
}

// ReportQuery carries the search box and the two dropdown filters of the analysis report.
type ReportQuery struct {
	Search   string
	Status   string
	Customer string
}

type ReportResult struct {
	Rows      []entities.ReportRow `json:"rows"`
	Total     int                  `json:"total"`
	Statuses  []string             `json:"statuses"`
	Customers []string             `json:"customers"`
}

type IReportUseCase interface {
	BuildRows() []entities.ReportRow
	Query(q ReportQuery) ReportResult
	ExportCSV(q ReportQuery) string
	ArchiveCSV(ctx context.Context, q ReportQuery) (string, error)
}

type ReportUseCase struct {
	accessor interfaces.IEntityAccessor
	archive  interfaces.IReportArchive
	now      func() time.Time
	logger   *zap.Logger
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(accessor interfaces.IEntityAccessor, archive interfaces.IReportArchive, logger *zap.Logger) *ReportUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportUseCase{accessor: accessor, archive: archive, now: time.Now, logger: logger}
}

// BuildRows flattens every header x line pair. Headers without lines yield nothing.
// Customer names come from one pass over the customer directory.
func (u *ReportUseCase) BuildRows() []entities.ReportRow {
	names := make(map[int64]string)
	for _, c := range u.accessor.GetCustomers() {
		if c.Name != "" {
			names[c.ID] = c.Name
		}
	}

	rows := make([]entities.ReportRow, 0)
	for _, h := range u.accessor.GetWorkOrderHeaders() {
		customer, ok := names[h.CompanyID]
		if !ok {
			customer = unknownCompanyName
		}
		for _, l := range u.accessor.GetWorkOrderLinesByHeaderID(h.ID) {
			rows = append(rows, entities.ReportRow{
				HeaderID:        h.ID,
				LineID:          l.ID,
				WorkOrderNumber: h.WorkOrderNumber,
				Customer:        customer,
				Status:          string(h.Status),
				Date:            h.Date,
				AnalysisType:    l.AnalysisType,
				AnalysisNumber:  l.AnalysisNumber,
				CylinderNumber:  l.CylinderNumber,
				WellName:        l.WellName,
				MeterNumber:     l.MeterNumber,
			})
		}
	}
	return rows
}

func (u *ReportUseCase) Query(q ReportQuery) ReportResult {
	all := u.BuildRows()
	rows := FilterByCustomer(FilterByStatus(Search(all, q.Search), q.Status), q.Customer)
	return ReportResult{
		Rows:      rows,
		Total:     len(rows),
		Statuses:  UniqueStatuses(all),
		Customers: UniqueCustomers(all),
	}
}

func (u *ReportUseCase) ExportCSV(q ReportQuery) string {
	return ExportToCSV(u.Query(q).Rows)
}

// ArchiveCSV uploads the filtered report and returns the object key.
func (u *ReportUseCase) ArchiveCSV(ctx context.Context, q ReportQuery) (string, error) {
	if u.archive == nil {
		return "", ErrReportArchiveDisabled
	}
	now := u.now().UTC()
	key := fmt.Sprintf("%s/%s/analysis-report-%s.csv", reportArchivePrefix, now.Format("2006/01"), now.Format("20060102T150405Z"))

	stored, err := u.archive.Put(ctx, key, []byte(u.ExportCSV(q)), csvContentType)
	if err != nil {
		u.logger.Error("[report][usecase] archive failed", zap.String("key", key), zap.Error(err))
		return "", fmt.Errorf("archive report: %w", err)
	}
	u.logger.Info("[report][usecase] report archived", zap.String("key", stored))
	return stored, nil
}

// Search keeps rows where any text column contains term, ignoring case.
func Search(rows []entities.ReportRow, term string) []entities.ReportRow {
	term = strings.TrimSpace(term)
	if term == "" {
		return rows
	}
	fold := cases.Fold()
	needle := fold.String(term)

	out := make([]entities.ReportRow, 0, len(rows))
	for _, r := range rows {
		for _, field := range searchableFields(r) {
			if strings.Contains(fold.String(field), needle) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

func searchableFields(r entities.ReportRow) []string {
	return []string{
		r.WorkOrderNumber,
		r.Customer,
		r.Status,
		r.AnalysisType,
		r.AnalysisNumber,
		r.CylinderNumber,
		r.WellName,
		r.MeterNumber,
	}
}

func FilterByStatus(rows []entities.ReportRow, status string) []entities.ReportRow {
	if isFilterAll(status) {
		return rows
	}
	out := make([]entities.ReportRow, 0, len(rows))
	for _, r := range rows {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out
}

func FilterByCustomer(rows []entities.ReportRow, customer string) []entities.ReportRow {
	if isFilterAll(customer) {
		return rows
	}
	out := make([]entities.ReportRow, 0, len(rows))
	for _, r := range rows {
		if r.Customer == customer {
			out = append(out, r)
		}
	}
	return out
}

func UniqueStatuses(rows []entities.ReportRow) []string {
	return uniqueSorted(rows, func(r entities.ReportRow) string { return r.Status })
}

func UniqueCustomers(rows []entities.ReportRow) []string {
	return uniqueSorted(rows, func(r entities.ReportRow) string { return r.Customer })
}

// ExportToCSV joins fields with bare commas. Values are not quoted, so a value that
// itself contains a comma shifts the columns of its line.
func ExportToCSV(rows []entities.ReportRow) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(reportCSVHeader, ","))
	for _, r := range rows {
		lines = append(lines, strings.Join([]string{
			r.WorkOrderNumber,
			r.Customer,
			r.Status,
			r.Date,
			r.AnalysisType,
			r.AnalysisNumber,
			r.CylinderNumber,
			r.WellName,
			r.MeterNumber,
		}, ","))
	}
	return strings.Join(lines, "\n")
}

func isFilterAll(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || v == FilterAll
}

func uniqueSorted(rows []entities.ReportRow, pick func(entities.ReportRow) string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range rows {
		v := pick(r)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
