package request

import "lims_service/internal/usecase"

type ReportQuery struct {
	Search   string `form:"search"`
	Status   string `form:"status"`
	Customer string `form:"customer"`
}

func (q ReportQuery) ToQuery() usecase.ReportQuery {
	return usecase.ReportQuery{Search: q.Search, Status: q.Status, Customer: q.Customer}
}
