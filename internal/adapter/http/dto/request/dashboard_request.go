package request

import "lims_service/internal/usecase"

// DashboardQuery carries the dashboard filter bar. Dates are YYYY-MM-DD.
type DashboardQuery struct {
	DateFrom     string `form:"date_from"`
	DateTo       string `form:"date_to"`
	AnalysisType string `form:"analysis_type"`
}

func (q DashboardQuery) ToFilter() usecase.DashboardFilter {
	return usecase.DashboardFilter{
		DateFrom:     q.DateFrom,
		DateTo:       q.DateTo,
		AnalysisType: q.AnalysisType,
	}
}
