package usecase

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"lims_service/internal/domain/entities"
	"lims_service/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	// AnalysisTypeAll disables the analysis type filter.
	AnalysisTypeAll = "all"
	// AnalysisTypeMixed labels a pending order whose lines span several analysis types.
	AnalysisTypeMixed = "Mixed"

	defaultAnalysisRate = 150.0
	monthlyTrendWindow  = 6
	dailyActivityWindow = 7
	topCustomersLimit   = 5
)

var analysisRates = map[string]float64{
	"GPA 2261":          150,
	"GPA 2172":          200,
	"BTU Analysis":      150,
	"Extended Analysis": 250,
}

var chartPalette = []string{
	"#3b82f6",
	"#10b981",
	"#f59e0b",
	"#ef4444",
	"#8b5cf6",
	"#06b6d4",
	"#ec4899",
	"#84cc16",
}

// EstimateRevenue returns the flat rate billed for one sample of the given analysis type.
func EstimateRevenue(analysisType string) float64 {
	if rate, ok := analysisRates[analysisType]; ok {
		return rate
	}
	return defaultAnalysisRate
}

// DashboardFilter narrows every dashboard panel. Dates are ISO (YYYY-MM-DD); a date that
// does not parse is ignored. An empty or "all" AnalysisType means no type filter.
type DashboardFilter struct {
	DateFrom     string
	DateTo       string
	AnalysisType string
}

func (f DashboardFilter) matchesType(analysisType string) bool {
	want := strings.TrimSpace(f.AnalysisType)
	if want == "" || strings.EqualFold(want, AnalysisTypeAll) {
		return true
	}
	return analysisType == want
}

func (f DashboardFilter) dates() dateRange {
	return newDateRange(f.DateFrom, f.DateTo)
}

// IDashboardUseCase exposes the dashboard aggregations.
//
// Every call recomputes from the current accessor snapshot; nothing is cached here.
type IDashboardUseCase interface {
	GetDashboard(filter DashboardFilter) entities.Dashboard
	GetStats(filter DashboardFilter) entities.DashboardStats
	GetAnalysisTypeDistribution(filter DashboardFilter) []entities.AnalysisTypeBucket
	GetMonthlyTrend(filter DashboardFilter) []entities.MonthlyTrendPoint
	GetPendingWorkOrders(filter DashboardFilter) []entities.PendingWorkOrder
	GetTopCustomers(filter DashboardFilter) []entities.TopCustomer
	GetDailyActivity(filter DashboardFilter) []entities.DailyActivity
	GetLatestCheckOut(cylinderNumber string) (entities.CheckOutRecord, bool)
}

type DashboardUseCase struct {
	accessor interfaces.IEntityAccessor
	now      func() time.Time
	logger   *zap.Logger
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(accessor interfaces.IEntityAccessor, logger *zap.Logger) *DashboardUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardUseCase{accessor: accessor, now: time.Now, logger: logger}
}

// WithClock replaces the wall clock used for queue ages and rolling windows.
func (u *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	u.now = now
	return u
}

func (u *DashboardUseCase) GetDashboard(filter DashboardFilter) entities.Dashboard {
	d := entities.Dashboard{
		Stats:             u.GetStats(filter),
		AnalysisTypes:     u.GetAnalysisTypeDistribution(filter),
		MonthlyTrend:      u.GetMonthlyTrend(filter),
		PendingWorkOrders: u.GetPendingWorkOrders(filter),
		TopCustomers:      u.GetTopCustomers(filter),
		DailyActivity:     u.GetDailyActivity(filter),
	}
	u.logger.Debug("[dashboard][usecase] dashboard computed",
		zap.String("date_from", filter.DateFrom),
		zap.String("date_to", filter.DateTo),
		zap.String("analysis_type", filter.AnalysisType),
		zap.Int("pending", len(d.PendingWorkOrders)),
	)
	return d
}

func (u *DashboardUseCase) GetStats(filter DashboardFilter) entities.DashboardStats {
	window := filter.dates()
	var stats entities.DashboardStats

	for _, co := range u.accessor.GetCheckOutRecords() {
		if window.contains(co.CreatedAt) {
			stats.TotalCheckOuts++
		}
	}
	for _, ci := range u.filteredCheckIns(filter) {
		stats.TotalCheckIns++
		if ci.Rushed {
			stats.RushedSamples++
		}
	}
	for _, imp := range u.accessor.GetImportRecords() {
		if imp.Status == entities.ImportStatusValidated && window.contains(imp.ImportedAt) {
			stats.ValidatedImports++
		}
	}
	return stats
}

func (u *DashboardUseCase) GetAnalysisTypeDistribution(filter DashboardFilter) []entities.AnalysisTypeBucket {
	buckets := make([]entities.AnalysisTypeBucket, 0)
	index := make(map[string]int)

	for _, ci := range u.filteredCheckIns(filter) {
		i, ok := index[ci.AnalysisType]
		if !ok {
			i = len(buckets)
			index[ci.AnalysisType] = i
			buckets = append(buckets, entities.AnalysisTypeBucket{
				AnalysisType: ci.AnalysisType,
				Color:        chartPalette[i%len(chartPalette)],
			})
		}
		buckets[i].Count++
		buckets[i].Revenue += EstimateRevenue(ci.AnalysisType)
	}
	return buckets
}

func (u *DashboardUseCase) GetMonthlyTrend(filter DashboardFilter) []entities.MonthlyTrendPoint {
	now := u.now().UTC()
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	points := make([]entities.MonthlyTrendPoint, monthlyTrendWindow)
	index := make(map[string]int, monthlyTrendWindow)
	for i := 0; i < monthlyTrendWindow; i++ {
		month := currentMonth.AddDate(0, i-(monthlyTrendWindow-1), 0)
		points[i] = entities.MonthlyTrendPoint{Month: month.Format("Jan")}
		index[month.Format("2006-01")] = i
	}

	for _, ci := range u.filteredCheckIns(filter) {
		i, ok := index[ci.CheckInTime.UTC().Format("2006-01")]
		if !ok {
			continue
		}
		points[i].Samples++
		points[i].Revenue += EstimateRevenue(ci.AnalysisType)
	}
	return points
}

// GetPendingWorkOrders returns the open queue, oldest first.
func (u *DashboardUseCase) GetPendingWorkOrders(filter DashboardFilter) []entities.PendingWorkOrder {
	window := filter.dates()
	now := u.now()
	pending := make([]entities.PendingWorkOrder, 0)

	for _, h := range u.accessor.GetWorkOrderHeaders() {
		if h.Status != entities.WorkOrderStatusPending && h.Status != entities.WorkOrderStatusInProgress {
			continue
		}
		received, ok := parseISODate(h.Date)
		if window.active() && (!ok || !window.contains(received)) {
			continue
		}

		lines := make([]entities.WorkOrderLine, 0)
		for _, l := range u.accessor.GetWorkOrderLinesByHeaderID(h.ID) {
			if filter.matchesType(l.AnalysisType) {
				lines = append(lines, l)
			}
		}
		if len(lines) == 0 {
			continue
		}

		hours := 0
		if ok {
			hours = int(math.Floor(now.Sub(received).Hours()))
		}
		// Dated in the future (clock skew or a typo at intake): not queued yet.
		if hours < 0 {
			hours = 0
		}

		item := entities.PendingWorkOrder{
			ID:              h.ID,
			WorkOrderNumber: h.WorkOrderNumber,
			CompanyID:       h.CompanyID,
			CompanyName:     u.companyName(h.CompanyID),
			Date:            h.Date,
			Status:          h.Status,
			AnalysisType:    queueAnalysisType(lines),
			SampleCount:     len(lines),
			Fees:            h.Fees(),
			HoursInQueue:    hours,
			QueueTime:       FormatQueueTime(hours),
			Priority:        GetPriority(hours),
		}
		for _, l := range lines {
			item.LineTotal += l.Price
			if l.Rushed {
				item.Rushed = true
			}
		}
		item.TotalValue = item.LineTotal + item.Fees
		pending = append(pending, item)
	}

	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].HoursInQueue > pending[j].HoursInQueue
	})
	return pending
}

func (u *DashboardUseCase) GetTopCustomers(filter DashboardFilter) []entities.TopCustomer {
	customers := make([]entities.TopCustomer, 0)
	index := make(map[int64]int)

	for _, ci := range u.filteredCheckIns(filter) {
		i, ok := index[ci.CompanyID]
		if !ok {
			i = len(customers)
			index[ci.CompanyID] = i
			customers = append(customers, entities.TopCustomer{
				CompanyID:   ci.CompanyID,
				CompanyName: u.companyName(ci.CompanyID),
			})
		}
		customers[i].Samples++
		customers[i].Revenue += EstimateRevenue(ci.AnalysisType)
	}

	sort.SliceStable(customers, func(i, j int) bool {
		return customers[i].Samples > customers[j].Samples
	})
	if len(customers) > topCustomersLimit {
		customers = customers[:topCustomersLimit]
	}
	return customers
}

// GetDailyActivity covers the trailing seven calendar days, today included. The date
// filter does not apply; the analysis type filter narrows check-ins only.
func (u *DashboardUseCase) GetDailyActivity(filter DashboardFilter) []entities.DailyActivity {
	today := startOfDay(u.now())
	checkIns := u.accessor.GetCheckedInSamples()
	checkOuts := u.accessor.GetCheckOutRecords()

	days := make([]entities.DailyActivity, 0, dailyActivityWindow)
	for i := dailyActivityWindow - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		activity := entities.DailyActivity{
			Date: day.Format(isoDateLayout),
			Day:  day.Format("Mon"),
		}
		for _, ci := range checkIns {
			if sameDay(ci.CheckInTime, day) && filter.matchesType(ci.AnalysisType) {
				activity.CheckIns++
			}
		}
		for _, co := range checkOuts {
			if sameDay(co.CreatedAt, day) {
				activity.CheckOuts++
			}
		}
		days = append(days, activity)
	}
	return days
}

// GetLatestCheckOut picks the checkout with the highest id for a cylinder.
func (u *DashboardUseCase) GetLatestCheckOut(cylinderNumber string) (entities.CheckOutRecord, bool) {
	cylinderNumber = strings.TrimSpace(cylinderNumber)
	var latest entities.CheckOutRecord
	found := false
	for _, co := range u.accessor.GetCheckOutRecords() {
		if co.Barcode != cylinderNumber {
			continue
		}
		if !found || co.ID > latest.ID {
			latest = co
			found = true
		}
	}
	return latest, found
}

func (u *DashboardUseCase) filteredCheckIns(filter DashboardFilter) []entities.CheckInRecord {
	window := filter.dates()
	out := make([]entities.CheckInRecord, 0)
	for _, ci := range u.accessor.GetCheckedInSamples() {
		if window.contains(ci.CheckInTime) && filter.matchesType(ci.AnalysisType) {
			out = append(out, ci)
		}
	}
	return out
}

func (u *DashboardUseCase) companyName(id int64) string {
	if c, ok := u.accessor.GetCompanyByID(id); ok && c.CompanyName != "" {
		return c.CompanyName
	}
	return fmt.Sprintf("Company %d", id)
}

func queueAnalysisType(lines []entities.WorkOrderLine) string {
	first := lines[0].AnalysisType
	for _, l := range lines[1:] {
		if l.AnalysisType != first {
			return AnalysisTypeMixed
		}
	}
	return first
}
