package domain

// UserRole defines the role hierarchy for registry accounts.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)

// ProjectStatus represents the lifecycle of a registered project record.
type ProjectStatus string

const (
	ProjectStatusActive   ProjectStatus = "active"
	ProjectStatusClosed   ProjectStatus = "closed"
	ProjectStatusCanceled ProjectStatus = "canceled"
)
