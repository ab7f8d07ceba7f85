package dto

import "time"

// Response DTOs

type UploadResponse struct {
	Category    string    `json:"category"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}
