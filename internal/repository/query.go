package repository

import (
	"errors"
	"strings"

	"teleradiology-api/internal/domain/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// applySearch adds a case-insensitive substring match over columns.
func applySearch(q *gorm.DB, term string, columns ...string) *gorm.DB {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return q
	}
	pattern := "%" + strings.ToLower(term) + "%"
	conds := make([]string, len(columns))
	args := make([]interface{}, len(columns))
	for i, col := range columns {
		conds[i] = "LOWER(" + col + ") LIKE ?"
		args[i] = pattern
	}
	return q.Where("("+strings.Join(conds, " OR ")+")", args...)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// countBy groups rows of model by column.
func countBy(db *gorm.DB, model interface{}, column string) ([]entity.LabelCount, error) {
	var rows []entity.LabelCount
	err := db.Model(model).
		Select(column + " AS label, COUNT(*) AS total").
		Group(column).
		Scan(&rows).Error
	return rows, err
}

func sumDecimal(q *gorm.DB, column string) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	if err := q.Select("SUM(" + column + ")").Row().Scan(&sum); err != nil {
		return decimal.Zero, err
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}

// saveOmitAssociations writes every column of an already loaded row without
// touching preloaded relations.
func saveOmitAssociations(db *gorm.DB, value interface{}) error {
	return db.Omit(clause.Associations).Save(value).Error
}

// first loads one row and maps not-found to nil, nil.
func first[T any](q *gorm.DB) (*T, error) {
	var out T
	if err := q.First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}
