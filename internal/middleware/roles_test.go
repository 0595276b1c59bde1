package middleware

import (
	"testing"

	"github.com/clickngoai/clickngoai-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		actor    string
		required string
		want     bool
	}{
		{models.RoleUser, models.RoleUser, true},
		{models.RoleUser, models.RoleAdmin, false},
		{models.RoleUser, models.RoleSuperadmin, false},
		{models.RoleAdmin, models.RoleUser, true},
		{models.RoleAdmin, models.RoleAdmin, true},
		{models.RoleAdmin, models.RoleSuperadmin, false},
		{models.RoleSuperadmin, models.RoleAdmin, true},
		{models.RoleSuperadmin, models.RoleSuperadmin, true},
		// Unknown roles rank lowest.
		{"", models.RoleUser, true},
		{"", models.RoleAdmin, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Allowed(tt.actor, tt.required), "Allowed(%q, %q)", tt.actor, tt.required)
	}
}
