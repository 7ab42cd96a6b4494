package entities

// Company is the customer a work order is billed to.
type Company struct {
	ID          int64  `json:"id"`
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`
	Active      bool   `json:"active"`
}

// Customer is the lightweight id/name view of a company used by pickers.
type Customer struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
