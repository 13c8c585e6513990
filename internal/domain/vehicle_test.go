package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestValidateVehicle verifies that validation passes exactly when name and
// brand are non-empty and year is at or above the minimum.
func TestValidateVehicle(t *testing.T) {
	tests := []struct {
		name     string
		vName    string
		vBrand   string
		vYear    int
		expected []string
	}{
		{
			name:     "valid vehicle",
			vName:    "Uno",
			vBrand:   "Fiat",
			vYear:    1990,
			expected: []string{},
		},
		{
			name:     "empty name",
			vName:    "",
			vBrand:   "Fiat",
			vYear:    2020,
			expected: []string{"name must not be empty"},
		},
		{
			name:     "empty brand",
			vName:    "Uno",
			vBrand:   "",
			vYear:    2020,
			expected: []string{"brand must not be empty"},
		},
		{
			name:     "year below minimum",
			vName:    "Uno",
			vBrand:   "Fiat",
			vYear:    1940,
			expected: []string{"invalid year"},
		},
		{
			name:   "all checks fail in order",
			vName:  "",
			vBrand: "",
			vYear:  0,
			expected: []string{
				"name must not be empty",
				"brand must not be empty",
				"invalid year",
			},
		},
		{
			name:     "boundary year is valid",
			vName:    "Maverick",
			vBrand:   "Ford",
			vYear:    1950,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateVehicle(tt.vName, tt.vBrand, tt.vYear)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleAdm))
	assert.True(t, ValidRole(RoleEditor))
	assert.False(t, ValidRole("adm"))
	assert.False(t, ValidRole(""))
	assert.False(t, ValidRole("SuperUser"))
}
