package auth

import "github.com/studyblog/studyblog-web/internal/api"

// Role is the backend's user role enum.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// AdminRoles is the default requirement for the admin area.
var AdminRoles = []Role{RoleAdmin, RoleSuperAdmin}

// HasRole reports whether user holds any of the given roles. This is the one
// permission predicate in the codebase; both the route guard and in-page
// conditional rendering go through it.
func HasRole(user *api.User, roles ...Role) bool {
	if user == nil {
		return false
	}
	for _, role := range roles {
		if user.Role == string(role) {
			return true
		}
	}
	return false
}

// IsSuperAdmin is a convenience for the user-management view, where promote,
// demote and delete are reserved for super admins.
func IsSuperAdmin(user *api.User) bool {
	return HasRole(user, RoleSuperAdmin)
}

// CanEditPost reports whether user may edit or delete post: the author, or
// any admin.
func CanEditPost(user *api.User, post *api.Post) bool {
	if user == nil || post == nil {
		return false
	}
	return user.ID == post.AuthorID || HasRole(user, AdminRoles...)
}
