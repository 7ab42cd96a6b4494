package entities

// ReportRow is one (work order header x line) pair flattened for the analysis report.
type ReportRow struct {
	HeaderID        int64  `json:"header_id"`
	LineID          int64  `json:"line_id"`
	WorkOrderNumber string `json:"work_order_number"`
	Customer        string `json:"customer"`
	Status          string `json:"status"`
	Date            string `json:"date"`
	AnalysisType    string `json:"analysis_type"`
	AnalysisNumber  string `json:"analysis_number"`
	CylinderNumber  string `json:"cylinder_number"`
	WellName        string `json:"well_name"`
	MeterNumber     string `json:"meter_number"`
}
