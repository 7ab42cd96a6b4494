package usecase

import (
	"fmt"

	"lims_service/internal/domain/entities"
)

const (
	attentionThresholdHours = 24
	urgentThresholdHours    = 48
)

var (
	priorityNormal = entities.Priority{
		Level: entities.PriorityNormal,
		Label: "Normal",
		Color: "green",
		Tag:   "bg-green-100 text-green-800",
	}
	priorityAttention = entities.Priority{
		Level: entities.PriorityAttention,
		Label: "Attention",
		Color: "yellow",
		Tag:   "bg-yellow-100 text-yellow-800",
	}
	priorityUrgent = entities.Priority{
		Level: entities.PriorityUrgent,
		Label: "Urgent",
		Color: "red",
		Tag:   "bg-red-100 text-red-800",
	}
)

// GetPriority classifies how long a work order has waited.
func GetPriority(hours int) entities.Priority {
	switch {
	case hours < attentionThresholdHours:
		return priorityNormal
	case hours < urgentThresholdHours:
		return priorityAttention
	default:
		return priorityUrgent
	}
}

// FormatQueueTime renders 30 as "1d 6h", 24 as "1d" and 23 as "23h".
func FormatQueueTime(hours int) string {
	if hours < 24 {
		return fmt.Sprintf("%dh", hours)
	}
	days := hours / 24
	rem := hours % 24
	if rem == 0 {
		return fmt.Sprintf("%dd", days)
	}
	return fmt.Sprintf("%dd %dh", days, rem)
}
