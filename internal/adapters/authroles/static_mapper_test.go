package authroles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/qatalent/jobboard/internal/domain/auth"
)

func TestStaticRoleMapper(t *testing.T) {
	t.Parallel()

	m := StaticRoleMapper{AdminGroup: "jobboard-admins", EmployerGroup: "jobboard-employers"}

	tests := []struct {
		name   string
		groups []string
		want   domainauth.Role
	}{
		{"no groups defaults to job seeker", nil, domainauth.RoleJobSeeker},
		{"unknown groups default to job seeker", []string{"staff", "vpn-users"}, domainauth.RoleJobSeeker},
		{"employer group", []string{"jobboard-employers"}, domainauth.RoleEmployer},
		{"admin group", []string{"jobboard-admins"}, domainauth.RoleAdmin},
		{"admin wins over employer", []string{"jobboard-employers", "jobboard-admins"}, domainauth.RoleAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, m.Map(tt.groups))
		})
	}
}

func TestStaticRoleMapper_EmptyConfig(t *testing.T) {
	t.Parallel()

	// With no groups configured, nothing can elevate.
	m := StaticRoleMapper{}
	assert.Equal(t, domainauth.RoleJobSeeker, m.Map([]string{"jobboard-admins"}))
}
