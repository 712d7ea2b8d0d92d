package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type commentPayload struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}

type pagePayload struct {
	Page  int `json:"page" validate:"omitempty,min=1"`
	Limit int `json:"limit" validate:"omitempty,min=1,max=100"`
}

func TestValidateAcceptsValidPayload(t *testing.T) {
	assert.Empty(t, Validate(commentPayload{Content: "looks great"}))
	assert.Empty(t, Validate(pagePayload{Page: 1, Limit: 100}))
	assert.Empty(t, Validate(pagePayload{})) // both optional
}

func TestValidateReportsFieldByJSONName(t *testing.T) {
	errs := Validate(commentPayload{})

	require.Len(t, errs, 1)
	assert.Equal(t, "content", errs[0].Field)
	assert.Equal(t, "content is required", errs[0].Message)
}

func TestValidatePaginationBounds(t *testing.T) {
	errs := Validate(pagePayload{Page: -1, Limit: 101})

	require.Len(t, errs, 2)
	fields := []string{errs[0].Field, errs[1].Field}
	assert.Contains(t, fields, "page")
	assert.Contains(t, fields, "limit")
}

func TestValidateCollectsAllFailuresWithoutShortCircuit(t *testing.T) {
	type multi struct {
		A string `json:"a" validate:"required"`
		B string `json:"b" validate:"required"`
		C int    `json:"c" validate:"min=1"`
	}

	errs := Validate(multi{})

	assert.Len(t, errs, 3)
}

func TestValidateIsTotal(t *testing.T) {
	// Non-struct payloads must yield an error list, never a panic
	assert.NotPanics(t, func() {
		errs := Validate("not a struct")
		require.Len(t, errs, 1)
		assert.Equal(t, "payload", errs[0].Field)
	})
	assert.NotPanics(t, func() {
		errs := Validate(nil)
		assert.NotEmpty(t, errs)
	})
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("  User@Example.COM "))
	assert.Equal(t, "a@b.co", NormalizeEmail("a@b.co"))
}
