package pagination

import (
	"net/http"
	"strconv"
	"strings"

	"teleradiology-api/pkg/response"

	"gorm.io/gorm"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
	DefaultSort  = "created_at"
)

// Params holds parsed paging and ordering parameters.
type Params struct {
	Page  int
	Limit int
	Sort  string
	Desc  bool
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// OrderClause renders a safe ORDER BY fragment; Sort is always whitelisted.
func (p Params) OrderClause() string {
	dir := "ASC"
	if p.Desc {
		dir = "DESC"
	}
	return p.Sort + " " + dir
}

// FromRequest reads page, limit, sort and order. Only columns listed in
// sortable are accepted; anything else falls back to created_at.
func FromRequest(r *http.Request, sortable ...string) Params {
	q := r.URL.Query()
	p := Params{
		Page:  parseIntOr(q.Get("page"), DefaultPage),
		Limit: parseIntOr(q.Get("limit"), DefaultLimit),
		Sort:  DefaultSort,
		Desc:  !strings.EqualFold(q.Get("order"), "asc"),
	}
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}

	sort := strings.TrimSpace(q.Get("sort"))
	// "-title" is shorthand for sort=title&order=desc
	if strings.HasPrefix(sort, "-") {
		sort = sort[1:]
		p.Desc = true
	}
	for _, col := range sortable {
		if sort == col {
			p.Sort = col
			break
		}
	}
	return p
}

// Paginate counts the filtered query and loads one page into dest. Preloads
// are applied to the page query only so the count stays a plain COUNT(*).
func Paginate[T any](query *gorm.DB, p Params, dest *[]T, preloads ...string) (int64, error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return 0, err
	}

	page := query.Session(&gorm.Session{})
	for _, rel := range preloads {
		page = page.Preload(rel)
	}
	err := page.
		Order(p.OrderClause()).
		Offset(p.Offset()).
		Limit(p.Limit).
		Find(dest).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// NewMeta derives page counts and navigation flags.
func NewMeta(page, limit int, total int64) *response.Meta {
	if limit < 1 {
		limit = DefaultLimit
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	return &response.Meta{
		Page:    page,
		Limit:   limit,
		Total:   total,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1,
	}
}

func parseIntOr(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
