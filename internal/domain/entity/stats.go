package entity

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// LabelCount is one row of a GROUP BY count.
type LabelCount struct {
	Label string `json:"label"`
	Total int64  `json:"total"`
}

type UserStats struct {
	Total    int64            `json:"total"`
	Active   int64            `json:"active"`
	Inactive int64            `json:"inactive"`
	Locked   int64            `json:"locked"`
	Verified int64            `json:"verified"`
	ByRole   map[string]int64 `json:"by_role"`
}

type ContentStats struct {
	Total      int64            `json:"total"`
	Published  int64            `json:"published"`
	Draft      int64            `json:"draft"`
	Archived   int64            `json:"archived"`
	TotalViews int64            `json:"total_views"`
	ByType     map[string]int64 `json:"by_type"`
	TopViewed  []Content        `json:"top_viewed"`
}

type ContactStats struct {
	Total         int64            `json:"total"`
	New           int64            `json:"new"`
	Spam          int64            `json:"spam"`
	ByStatus      map[string]int64 `json:"by_status"`
	ByInquiryType map[string]int64 `json:"by_inquiry_type"`
	ByPriority    map[string]int64 `json:"by_priority"`
}

type ApplicationStats struct {
	Total            int64            `json:"total"`
	Pending          int64            `json:"pending"`
	Approved         int64            `json:"approved"`
	ByStatus         map[string]int64 `json:"by_status"`
	BySpecialization map[string]int64 `json:"by_specialization"`
}

type LeadStats struct {
	Total          int64            `json:"total"`
	ByStatus       map[string]int64 `json:"by_status"`
	BySource       map[string]int64 `json:"by_source"`
	ByIndustry     map[string]int64 `json:"by_industry"`
	PipelineValue  decimal.Decimal  `json:"pipeline_value"`
	WonValue       decimal.Decimal  `json:"won_value"`
	AverageScore   float64          `json:"average_score"`
	ConversionRate float64          `json:"conversion_rate"`
}

// ConversionRate is won/(won+lost) as a percentage rounded to two places.
func ConversionRate(won, lost int64) float64 {
	if won+lost == 0 {
		return 0
	}
	rate := decimal.NewFromInt(won * 100).Div(decimal.NewFromInt(won + lost)).Round(2)
	f, _ := rate.Float64()
	return f
}

// CountMap turns grouped rows into a label → total map.
func CountMap(rows []LabelCount) map[string]int64 {
	return lo.SliceToMap(rows, func(r LabelCount) (string, int64) {
		return r.Label, r.Total
	})
}
