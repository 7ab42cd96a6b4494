package entities

import "time"

// CheckInRecord marks a sample arriving at the lab.
type CheckInRecord struct {
	ID           int64     `json:"id"`
	CompanyID    int64     `json:"company_id"`
	AnalysisType string    `json:"analysis_type"`
	CheckInTime  time.Time `json:"check_in_time"`
	Rushed       bool      `json:"rushed"`
}

// CheckOutRecord marks a cylinder leaving the lab. Barcode carries the cylinder number.
type CheckOutRecord struct {
	ID        int64     `json:"id"`
	CompanyID int64     `json:"company_id"`
	Barcode   string    `json:"barcode"`
	CreatedAt time.Time `json:"created_at"`
}
