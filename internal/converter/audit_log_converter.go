package converter

import (
	"teleradiology-api/internal/delivery/dto"
	"teleradiology-api/internal/domain/entity"

	"github.com/samber/lo"
)

// AuditLogToResponse converts a AuditLog entity to AuditLogResponse DTO
func AuditLogToResponse(log *entity.AuditLog) *dto.AuditLogResponse {
	if log == nil {
		return nil
	}

	metadata := log.Metadata
	if metadata == nil {
		metadata = entity.JSON{}
	}
	return &dto.AuditLogResponse{
		ID:         log.ID,
		UserID:     log.UserID,
		User:       UserToSummary(log.User),
		Action:     log.Action,
		EntityType: log.EntityType,
		EntityID:   log.EntityID,
		Metadata:   metadata,
		CreatedAt:  log.CreatedAt,
	}
}

// AuditLogsToResponses converts a slice of AuditLog entities to slice of AuditLogResponse DTOs
func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	return lo.Map(logs, func(l entity.AuditLog, _ int) dto.AuditLogResponse {
		return *AuditLogToResponse(&l)
	})
}
