package domain

// Role is the single role flag attached to the current user. There is no
// authentication model; callers supply the actor explicitly.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether the value is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Actor identifies who issued a command.
type Actor struct {
	ID   string
	Role Role
}

// IsAdmin reports whether the actor may run admin-only commands.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
