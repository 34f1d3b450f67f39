package domain

import "slices"

// PermissionKey identifies a global permission held via group membership.
// Global permissions apply across every resource in the workspace.
type PermissionKey string

const (
	// ViewAllProjects allows viewing every project regardless of membership.
	ViewAllProjects PermissionKey = "VIEW_ALL_PROJECTS"

	// ManageAllProjects allows creating, editing and deleting any project.
	ManageAllProjects PermissionKey = "MANAGE_ALL_PROJECTS"

	// ManageUserAccess allows managing users, groups and their permissions.
	ManageUserAccess PermissionKey = "MANAGE_USER_ACCESS"
)

// ProjectPermissionKey identifies a permission scoped to a single project,
// held via project-group membership. A project permission is meaningful only
// when evaluated against the project its group belongs to.
type ProjectPermissionKey string

const (
	// ViewProject allows viewing one project and its activity.
	ViewProject ProjectPermissionKey = "VIEW_PROJECT"

	// EditProject allows editing one project's settings.
	EditProject ProjectPermissionKey = "EDIT_PROJECT"

	// ManageProject allows managing one project's groups and API keys.
	ManageProject ProjectPermissionKey = "MANAGE_PROJECT"
)

// PermissionKeys returns the fixed catalog of global permission keys.
func PermissionKeys() []PermissionKey {
	return []PermissionKey{ViewAllProjects, ManageAllProjects, ManageUserAccess}
}

// ProjectPermissionKeys returns the fixed catalog of project permission keys.
func ProjectPermissionKeys() []ProjectPermissionKey {
	return []ProjectPermissionKey{ViewProject, EditProject, ManageProject}
}

// IsValidPermissionKey reports whether key belongs to the global catalog.
func IsValidPermissionKey(key PermissionKey) bool {
	return slices.Contains(PermissionKeys(), key)
}

// IsValidProjectPermissionKey reports whether key belongs to the project catalog.
func IsValidProjectPermissionKey(key ProjectPermissionKey) bool {
	return slices.Contains(ProjectPermissionKeys(), key)
}

// HasAnyPermission reports whether held and required intersect.
// A single qualifying permission is enough (OR semantics within a scope).
func HasAnyPermission(held, required []PermissionKey) bool {
	for _, key := range required {
		if slices.Contains(held, key) {
			return true
		}
	}
	return false
}

// HasAnyProjectPermission reports whether held and required intersect.
func HasAnyProjectPermission(held, required []ProjectPermissionKey) bool {
	for _, key := range required {
		if slices.Contains(held, key) {
			return true
		}
	}
	return false
}
