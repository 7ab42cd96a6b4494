package response

import (
	"lims_service/internal/domain/entities"
	"lims_service/internal/usecase"
)

type ReportResponse struct {
	Rows      []entities.ReportRow `json:"rows"`
	Total     int                  `json:"total"`
	Statuses  []string             `json:"statuses"`
	Customers []string             `json:"customers"`
}

func FromReportResult(r usecase.ReportResult) ReportResponse {
	return ReportResponse{Rows: r.Rows, Total: r.Total, Statuses: r.Statuses, Customers: r.Customers}
}

type ReportArchiveResponse struct {
	Key string `json:"key"`
}
