package domain

// Role gates which operations a user may perform.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleOwner      Role = "OWNER"
	RoleSupervisor Role = "SUPERVISOR"
	RoleForeman    Role = "FOREMAN"
)

// CanManageFinance reports whether the role may touch accounts, vouchers and payments.
func (r Role) CanManageFinance() bool {
	return r == RoleAdmin || r == RoleOwner
}

// CanManageProjects reports whether the role may create and edit projects and workers.
func (r Role) CanManageProjects() bool {
	return r == RoleAdmin || r == RoleOwner || r == RoleSupervisor
}

// CanRecordAttendance reports whether the role may record worker attendance.
func (r Role) CanRecordAttendance() bool {
	return r.CanManageProjects() || r == RoleForeman
}

// User is a back-office user of the system.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Username     string `json:"username"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	Phone        string `json:"phone"`
	PasswordHash string `json:"-"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}
