package usecase

import (
	"testing"

	"lims_service/internal/domain/entities"
)

func TestGetPriority(t *testing.T) {
	tests := []struct {
		hours int
		level entities.PriorityLevel
		label string
		color string
	}{
		{0, entities.PriorityNormal, "Normal", "green"},
		{23, entities.PriorityNormal, "Normal", "green"},
		{24, entities.PriorityAttention, "Attention", "yellow"},
		{47, entities.PriorityAttention, "Attention", "yellow"},
		{48, entities.PriorityUrgent, "Urgent", "red"},
		{500, entities.PriorityUrgent, "Urgent", "red"},
	}
	for _, tt := range tests {
		p := GetPriority(tt.hours)
		if p.Level != tt.level || p.Label != tt.label || p.Color != tt.color {
			t.Fatalf("GetPriority(%d) = %+v, want %s/%s", tt.hours, p, tt.label, tt.color)
		}
		if p.Tag == "" {
			t.Fatalf("GetPriority(%d) has no styling tag", tt.hours)
		}
	}
}

func TestFormatQueueTime(t *testing.T) {
	tests := map[int]string{
		0:  "0h",
		23: "23h",
		24: "1d",
		30: "1d 6h",
		48: "2d",
		73: "3d 1h",
	}
	for hours, want := range tests {
		if got := FormatQueueTime(hours); got != want {
			t.Fatalf("FormatQueueTime(%d) = %q, want %q", hours, got, want)
		}
	}
}
