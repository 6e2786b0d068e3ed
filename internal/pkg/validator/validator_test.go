package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email    string
		expected bool
	}{
		{"anna@studio.kz", true},
		{"first.last+tag@mail.example.com", true},
		{"no-at-sign.com", false},
		{"double..dot@mail.com", false},
		{".leading@mail.com", false},
		{"trailing.@mail.com", false},
		{"user@.mail.com", false},
		{"user@mail.c", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidEmail(tt.email))
		})
	}
}

type sample struct {
	Email  string `validate:"required,strict_email"`
	Rating int    `validate:"min=1,max=5"`
}

func TestValidate(t *testing.T) {
	assert.Nil(t, Validate(sample{Email: "a@b.co", Rating: 3}))

	errs := Validate(sample{Email: "a..b@c.co", Rating: 9})
	assert.Equal(t, "strict_email", errs["Email"])
	assert.Equal(t, "max", errs["Rating"])
}
