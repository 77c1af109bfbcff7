package entity

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLeadingNumber(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"₹500", 500},
		{"10 Years of experience", 10},
		{"₹ 1,200", 1},
		{"Consultation fee: 300 (incl. 18% tax)", 300},
		{"", 0},
		{"free", 0},
		{"007 years", 7},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.True(t, LeadingNumber(tt.in).Equal(decimalOf(tt.want)), "got %s", LeadingNumber(tt.in))
		})
	}
}

func TestLeadingNumber_LongDigitRunDoesNotOverflow(t *testing.T) {
	n := LeadingNumber("₹" + strings.Repeat("9", 40))
	assert.Equal(t, strings.Repeat("9", 40), n.String())
}

func TestConsultModeFor(t *testing.T) {
	assert.Equal(t, ConsultModeBoth, ConsultModeFor(true, true))
	assert.Equal(t, ConsultModeBoth, ConsultModeFor(false, false))
	assert.Equal(t, ConsultModeVideo, ConsultModeFor(true, false))
	assert.Equal(t, ConsultModeClinic, ConsultModeFor(false, true))
}

func TestAllSpecialties_NoCommasNoDuplicates(t *testing.T) {
	seen := make(map[string]bool)
	for _, name := range AllSpecialties {
		assert.NotContains(t, name, ",")
		assert.False(t, seen[name], "duplicate specialty %q", name)
		seen[name] = true
	}
	assert.Len(t, AllSpecialties, 25)
}

func TestFilterState_ClearedAndEqual(t *testing.T) {
	assert.True(t, FilterState{}.IsCleared())
	assert.True(t, FilterState{Specialties: []string{}}.IsCleared())
	assert.False(t, FilterState{SortBy: SortByFees}.IsCleared())

	assert.True(t, FilterState{}.Equal(FilterState{Specialties: []string{}}))
	assert.False(t, FilterState{Specialties: []string{"A", "B"}}.Equal(FilterState{Specialties: []string{"B", "A"}}))
}

func TestConsultationTypeAndSortOption_Valid(t *testing.T) {
	assert.True(t, ConsultationTypeVideo.Valid())
	assert.True(t, ConsultationTypeUnset.Valid())
	assert.False(t, ConsultationType("BOTH").Valid())
	assert.True(t, SortByExperience.Valid())
	assert.False(t, SortOption("rating").Valid())
}

func decimalOf(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}
