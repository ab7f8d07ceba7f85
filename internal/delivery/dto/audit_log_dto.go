package dto

import (
	"time"

	"teleradiology-api/internal/domain/entity"

	"github.com/google/uuid"
)

// Response DTOs

type AuditLogResponse struct {
	ID         int64        `json:"id"`
	UserID     *uuid.UUID   `json:"user_id,omitempty"`
	User       *UserSummary `json:"user,omitempty"`
	Action     string       `json:"action"`
	EntityType string       `json:"entity_type,omitempty"`
	EntityID   string       `json:"entity_id,omitempty"`
	Metadata   entity.JSON  `json:"metadata"`
	CreatedAt  time.Time    `json:"created_at"`
}
