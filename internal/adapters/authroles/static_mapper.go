package authroles

import (
	domainauth "github.com/qatalent/jobboard/internal/domain/auth"
)

// StaticRoleMapper maps IdP groups to application roles by simple string
// membership. Admin wins over employer; anyone else is a job seeker.
type StaticRoleMapper struct {
	AdminGroup    string
	EmployerGroup string
}

func (m StaticRoleMapper) Map(groups []string) domainauth.Role {
	for _, g := range groups {
		if m.AdminGroup != "" && g == m.AdminGroup {
			return domainauth.RoleAdmin
		}
	}
	for _, g := range groups {
		if m.EmployerGroup != "" && g == m.EmployerGroup {
			return domainauth.RoleEmployer
		}
	}
	return domainauth.RoleJobSeeker
}
