package entity

import (
	"strings"

	"github.com/samber/lo"
)

// Role is stored on the user row; permissions are derived from it.
type Role string

const (
	RoleSuperAdmin   Role = "super_admin"
	RoleAdmin        Role = "admin"
	RoleCMSEditor    Role = "cms_editor"
	RoleSalesManager Role = "sales_manager"
	RoleSalesRep     Role = "sales_rep"
	RoleHRManager    Role = "hr_manager"
	RoleSupport      Role = "support"
	RoleUser         Role = "user"
)

var AllRoles = []Role{
	RoleSuperAdmin, RoleAdmin, RoleCMSEditor, RoleSalesManager,
	RoleSalesRep, RoleHRManager, RoleSupport, RoleUser,
}

// Permission names are "resource:action".
const (
	PermUsersRead          = "users:read"
	PermUsersCreate        = "users:create"
	PermUsersUpdate        = "users:update"
	PermUsersDelete        = "users:delete"
	PermContentRead        = "content:read"
	PermContentCreate      = "content:create"
	PermContentUpdate      = "content:update"
	PermContentDelete      = "content:delete"
	PermContentPublish     = "content:publish"
	PermContactsRead       = "contacts:read"
	PermContactsUpdate     = "contacts:update"
	PermContactsDelete     = "contacts:delete"
	PermApplicationsRead   = "applications:read"
	PermApplicationsUpdate = "applications:update"
	PermApplicationsReview = "applications:review"
	PermApplicationsDelete = "applications:delete"
	PermLeadsRead          = "leads:read"
	PermLeadsUpdate        = "leads:update"
	PermLeadsDelete        = "leads:delete"
	PermUploadsRead        = "uploads:read"
	PermUploadsWrite       = "uploads:write"
	PermDashboardRead      = "dashboard:read"
	PermAuditRead          = "audit:read"
)

var rolePermissions = map[Role][]string{
	RoleSuperAdmin:   {"*"},
	RoleAdmin:        {"*"},
	RoleCMSEditor:    {"content:*", "uploads:*", PermDashboardRead},
	RoleSalesManager: {"leads:*", PermContactsRead, PermDashboardRead},
	RoleSalesRep:     {PermLeadsRead, PermLeadsUpdate, PermDashboardRead},
	RoleHRManager:    {"applications:*", PermUploadsRead, PermDashboardRead},
	RoleSupport:      {"contacts:*", PermDashboardRead},
	RoleUser:         {},
}

// Admins get everything except deleting accounts.
var roleDenied = map[Role][]string{
	RoleAdmin: {PermUsersDelete},
}

func (r Role) IsValid() bool {
	return lo.Contains(AllRoles, r)
}

// IsStaff is true for every role except plain users.
func (r Role) IsStaff() bool {
	return r.IsValid() && r != RoleUser
}

// Can reports whether the role grants permission. Grants may use "resource:*"
// or "*" wildcards.
func (r Role) Can(permission string) bool {
	if lo.Contains(roleDenied[r], permission) {
		return false
	}
	resource, _, _ := strings.Cut(permission, ":")
	return lo.ContainsBy(rolePermissions[r], func(grant string) bool {
		return grant == "*" || grant == permission || grant == resource+":*"
	})
}

// Permissions lists the raw grants for a role.
func (r Role) Permissions() []string {
	return append([]string(nil), rolePermissions[r]...)
}
