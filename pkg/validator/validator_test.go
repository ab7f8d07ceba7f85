package validator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email  string           `json:"email" validate:"required,email"`
	Name   string           `json:"name" validate:"notblank,min=2"`
	Slug   string           `json:"slug" validate:"omitempty,slug"`
	Status string           `json:"status" validate:"omitempty,oneof=draft published"`
	Amount *decimal.Decimal `json:"amount" validate:"omitempty,gte=0"`
	Tags   []string         `json:"tags" validate:"max=2"`
}

func TestValidate_Passes(t *testing.T) {
	v := NewValidator()
	amount := decimal.NewFromInt(10)
	err := v.Validate(&sample{Email: "a@b.co", Name: "Ann", Slug: "hello-world", Status: "draft", Amount: &amount})
	assert.NoError(t, err)
}

func TestFormatValidationErrors_UsesJSONNames(t *testing.T) {
	v := NewValidator()
	negative := decimal.NewFromInt(-1)
	err := v.Validate(&sample{
		Email:  "nope",
		Name:   "   ",
		Slug:   "Bad Slug",
		Status: "live",
		Amount: &negative,
		Tags:   []string{"a", "b", "c"},
	})
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Equal(t, "email must be a valid email address", errs["email"])
	assert.Equal(t, "name is required", errs["name"])
	assert.Equal(t, "slug may only contain lowercase letters, numbers and hyphens", errs["slug"])
	assert.Equal(t, "status must be one of: draft, published", errs["status"])
	assert.Equal(t, "amount must be greater than or equal to 0", errs["amount"])
	assert.Equal(t, "tags must be at most 2 items", errs["tags"])
}

func TestFormatValidationErrors_IgnoresForeignErrors(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.FormatValidationErrors(assert.AnError))
}
