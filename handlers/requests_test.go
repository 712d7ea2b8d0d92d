package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usedtech_backend/models"
	"usedtech_backend/validation"
)

func fieldsOf(errs []models.ErrorDetail) []string {
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	return fields
}

func TestRegisterRequestReportsEveryViolation(t *testing.T) {
	errs := validation.Validate(RegisterRequest{
		Name:     "A",
		Email:    "bad-email",
		Password: "123",
	})

	// Exactly three problems: name length, email format, password length
	require.Len(t, errs, 3)
	fields := fieldsOf(errs)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}

func TestRegisterRequestAcceptsValidPayload(t *testing.T) {
	phone := "+14155550101"
	errs := validation.Validate(RegisterRequest{
		Name:     "John Electronics",
		Email:    "john@example.com",
		Password: "secret1",
		Phone:    &phone,
	})
	assert.Empty(t, errs)
}

func TestRegisterRequestPhoneIsOptional(t *testing.T) {
	errs := validation.Validate(RegisterRequest{
		Name:     "John Electronics",
		Email:    "john@example.com",
		Password: "secret1",
	})
	assert.Empty(t, errs)

	bad := "not-a-phone"
	errs = validation.Validate(RegisterRequest{
		Name:     "John Electronics",
		Email:    "john@example.com",
		Password: "secret1",
		Phone:    &bad,
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "phone", errs[0].Field)
}

func validProductRequest() CreateProductRequest {
	return CreateProductRequest{
		Name:        "Arduino Uno R3 original",
		Description: "Barely used development board, works perfectly fine.",
		Price:       19.99,
		Condition:   "like-new",
		CategoryID:  "7c9a1c8e-3f2b-4d6a-9e1f-2b8c4d5e6f70",
		Stock:       1,
		Location:    "Austin, TX",
	}
}

func TestCreateProductRequestRules(t *testing.T) {
	assert.Empty(t, validation.Validate(validProductRequest()))

	tests := []struct {
		name   string
		mutate func(*CreateProductRequest)
		field  string
	}{
		{"short name", func(r *CreateProductRequest) { r.Name = "Uno" }, "name"},
		{"short description", func(r *CreateProductRequest) { r.Description = "too short" }, "description"},
		{"zero price", func(r *CreateProductRequest) { r.Price = 0 }, "price"},
		{"negative price", func(r *CreateProductRequest) { r.Price = -5 }, "price"},
		{"unknown condition", func(r *CreateProductRequest) { r.Condition = "mint" }, "condition"},
		{"bad category id", func(r *CreateProductRequest) { r.CategoryID = "not-a-uuid" }, "category_id"},
		{"zero stock", func(r *CreateProductRequest) { r.Stock = 0 }, "stock"},
		{"short location", func(r *CreateProductRequest) { r.Location = "X" }, "location"},
		{"too many images", func(r *CreateProductRequest) {
			r.Images = []string{"a", "b", "c", "d", "e", "f"}
		}, "images"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validProductRequest()
			tt.mutate(&req)

			errs := validation.Validate(req)

			require.NotEmpty(t, errs)
			assert.Contains(t, fieldsOf(errs), tt.field)
		})
	}
}

func TestCreateProductRequestConditionEnum(t *testing.T) {
	for _, condition := range []string{"new", "like-new", "good", "fair", "poor"} {
		req := validProductRequest()
		req.Condition = condition
		assert.Empty(t, validation.Validate(req), "condition %q must be accepted", condition)
	}
}

func TestCreateCommentRequestLength(t *testing.T) {
	assert.Empty(t, validation.Validate(CreateCommentRequest{Content: "nice board"}))

	errs := validation.Validate(CreateCommentRequest{})
	require.Len(t, errs, 1)
	assert.Equal(t, "content", errs[0].Field)

	long := make([]byte, 1001)
	for i := range long {
		long[i] = 'x'
	}
	errs = validation.Validate(CreateCommentRequest{Content: string(long)})
	require.Len(t, errs, 1)
	assert.Equal(t, "content", errs[0].Field)
}

func TestCreateOrderRequestRules(t *testing.T) {
	assert.Empty(t, validation.Validate(CreateOrderRequest{
		ProductID: "7c9a1c8e-3f2b-4d6a-9e1f-2b8c4d5e6f70",
		Quantity:  2,
	}))

	errs := validation.Validate(CreateOrderRequest{ProductID: "nope", Quantity: 0})
	fields := fieldsOf(errs)
	assert.Contains(t, fields, "product_id")
	assert.Contains(t, fields, "quantity")
}
