package dto

import "teleradiology-api/internal/domain/entity"

// Response DTOs

type DashboardStatsResponse struct {
	Users        *entity.UserStats         `json:"users"`
	Content      *ContentAnalyticsResponse `json:"content"`
	Contacts     *entity.ContactStats      `json:"contacts"`
	Applications *entity.ApplicationStats  `json:"applications"`
	Leads        *entity.LeadStats         `json:"leads"`
}

type DashboardRecentResponse struct {
	Contacts     []ContactResponse     `json:"contacts"`
	Applications []ApplicationResponse `json:"applications"`
	Leads        []LeadResponse        `json:"leads"`
}
