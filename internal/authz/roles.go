package authz

const (
	RoleAnalyst    = 10
	RoleOperations = 20
	RoleAdmin      = 50
)

// IsPrivileged — доступ к агрегированным данным по заявкам.
func IsPrivileged(roleID int) bool {
	return roleID == RoleAnalyst || roleID == RoleOperations || roleID == RoleAdmin
}

func IsAdmin(roleID int) bool {
	return roleID == RoleAdmin
}
