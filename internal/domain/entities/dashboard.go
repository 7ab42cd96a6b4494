package entities

// DashboardStats are the four headline counters of the dashboard.
type DashboardStats struct {
	TotalCheckOuts   int `json:"total_check_outs"`
	TotalCheckIns    int `json:"total_check_ins"`
	RushedSamples    int `json:"rushed_samples"`
	ValidatedImports int `json:"validated_imports"`
}

type AnalysisTypeBucket struct {
	AnalysisType string  `json:"analysis_type"`
	Count        int     `json:"count"`
	Revenue      float64 `json:"revenue"`
	Color        string  `json:"color"`
}

type MonthlyTrendPoint struct {
	Month   string  `json:"month"`
	Samples int     `json:"samples"`
	Revenue float64 `json:"revenue"`
}

// PriorityLevel orders queue urgency: Normal < Attention < Urgent.
type PriorityLevel int

const (
	PriorityNormal PriorityLevel = iota
	PriorityAttention
	PriorityUrgent
)

type Priority struct {
	Level PriorityLevel `json:"level"`
	Label string        `json:"label"`
	Color string        `json:"color"`
	Tag   string        `json:"tag"`
}

type PendingWorkOrder struct {
	ID              int64           `json:"id"`
	WorkOrderNumber string          `json:"work_order_number"`
	CompanyID       int64           `json:"company_id"`
	CompanyName     string          `json:"company_name"`
	Date            string          `json:"date"`
	Status          WorkOrderStatus `json:"status"`
	AnalysisType    string          `json:"analysis_type"`
	SampleCount     int             `json:"sample_count"`
	Rushed          bool            `json:"rushed"`
	LineTotal       float64         `json:"line_total"`
	Fees            float64         `json:"fees"`
	TotalValue      float64         `json:"total_value"`
	HoursInQueue    int             `json:"hours_in_queue"`
	QueueTime       string          `json:"queue_time"`
	Priority        Priority        `json:"priority"`
}

type TopCustomer struct {
	CompanyID   int64   `json:"company_id"`
	CompanyName string  `json:"company_name"`
	Samples     int     `json:"samples"`
	Revenue     float64 `json:"revenue"`
}

type DailyActivity struct {
	Date      string `json:"date"`
	Day       string `json:"day"`
	CheckIns  int    `json:"check_ins"`
	CheckOuts int    `json:"check_outs"`
}

// Dashboard bundles every dashboard panel computed for one filter.
type Dashboard struct {
	Stats             DashboardStats       `json:"stats"`
	AnalysisTypes     []AnalysisTypeBucket `json:"analysis_types"`
	MonthlyTrend      []MonthlyTrendPoint  `json:"monthly_trend"`
	PendingWorkOrders []PendingWorkOrder   `json:"pending_work_orders"`
	TopCustomers      []TopCustomer        `json:"top_customers"`
	DailyActivity     []DailyActivity      `json:"daily_activity"`
}
