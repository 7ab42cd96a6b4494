package response

import "lims_service/internal/domain/entities"

// PriorityResponse pairs a queue age with its badge.
type PriorityResponse struct {
	Hours     int               `json:"hours"`
	QueueTime string            `json:"queue_time"`
	Priority  entities.Priority `json:"priority"`
}

type LatestCheckOutResponse struct {
	CylinderNumber string                  `json:"cylinder_number"`
	CheckOut       entities.CheckOutRecord `json:"check_out"`
}

type RefreshResponse struct {
	Status string `json:"status"`
}
