package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid", "a@example.com", false},
		{"valid with plus", "a+tag@example.com", false},
		{"empty", "", true},
		{"no at", "example.com", true},
		{"no domain dot", "a@example", true},
		{"spaces", "a b@example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("longenough"))
}

func TestValidateName(t *testing.T) {
	assert.Error(t, ValidateName(""))
	assert.Error(t, ValidateName("   "))
	assert.Error(t, ValidateName(strings.Repeat("x", MaxNameLen+1)))
	assert.NoError(t, ValidateName("Alice"))
}
