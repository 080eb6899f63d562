package domain_test

import (
	"testing"

	"github.com/goldenhorse/ghs_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestNatureForRootType(t *testing.T) {
	assert.Equal(t, domain.NatureDebit, domain.NatureForRootType(domain.Asset))
	assert.Equal(t, domain.NatureDebit, domain.NatureForRootType(domain.Expense))
	assert.Equal(t, domain.NatureCredit, domain.NatureForRootType(domain.Liability))
	assert.Equal(t, domain.NatureCredit, domain.NatureForRootType(domain.Equity))
	assert.Equal(t, domain.NatureCredit, domain.NatureForRootType(domain.Revenue))
}

func TestLastCodeSegment(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"1", 1},
		{"1.2", 2},
		{"1.2.17", 17},
		{"5.10", 10},
		{"1.2.x", 0},
		{"", 0},
		{"1.", 0},
		{"1.-3", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.LastCodeSegment(tt.code), "code %q", tt.code)
	}
}

func TestValidAccountCode(t *testing.T) {
	valid := []string{"1", "1.2", "1.2.3", "5.12.40"}
	for _, code := range valid {
		assert.True(t, domain.ValidAccountCode(code), "code %q should be valid", code)
	}

	invalid := []string{"", ".", "1.", ".1", "1..2", "1.0", "0", "a.b", "1.x.2", "-1", "1.-2"}
	for _, code := range invalid {
		assert.False(t, domain.ValidAccountCode(code), "code %q should be invalid", code)
	}
}
