package dto

import "time"

type ProviderSummaryDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

type BookingListDTO struct {
	ID           uint               `json:"id"`
	ScheduledFor time.Time          `json:"scheduled_for"`
	CanceledAt   *time.Time         `json:"canceled_at"`
	IsPast       bool               `json:"is_past"`
	IsCancelable bool               `json:"is_cancelable"`
	Provider     ProviderSummaryDTO `json:"provider"`
}
