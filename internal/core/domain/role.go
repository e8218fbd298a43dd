package domain

// Role determines visible data and permitted mutations. It is derived from
// the authenticated identity on every request, never persisted.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleStaff  Role = "staff"
	RoleViewer Role = "viewer"
)

// CanManage reports whether the role may create, edit, and complete
// appointments.
func (r Role) CanManage() bool {
	return r == RoleAdmin || r == RoleStaff
}

// CanDelete reports whether the role may delete appointments.
func (r Role) CanDelete() bool {
	return r == RoleAdmin
}
