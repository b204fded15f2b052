package auth

// Roles que devuelve /auth/verify.
const (
	RoleOwner    = "owner"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// Claims es lo que sabemos del usuario autenticado.
type Claims struct {
	UserID string
	Role   string
}
