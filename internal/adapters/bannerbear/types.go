package bannerbear

import "bannergen/internal/core/domain"

// Image statuses reported by the API.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

type createImageRequest struct {
	Template      string                `json:"template"`
	Modifications []domain.Modification `json:"modifications"`
	WebhookURL    *string               `json:"webhook_url"`
}

// Image is the subset of the Bannerbear image object we read.
type Image struct {
	UID      string `json:"uid"`
	Status   string `json:"status"`
	ImageURL string `json:"image_url"`
	Error    string `json:"error"`
	Template string `json:"template"`
}
