package user

type Role string

const (
	RoleClient    Role = "CLIENTE"
	RoleInspector Role = "INSPECTOR"
	RoleAdmin     Role = "ADMINISTRADOR"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleInspector, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
