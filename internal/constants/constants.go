package constants

// Role is the global role assigned at registration. It never changes
// through this service; there is no promotion endpoint.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleEmployee Role = "Employee"
)

// ParseRole maps a stored or token-carried role string onto the closed
// enum. Unknown values resolve to false.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleEmployee:
		return Role(s), true
	default:
		return "", false
	}
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// Task status is an open string. Pending is the only value the engine
// assigns itself; every other status arrives from an assignee.
const StatusPending = "Pending"

const DefaultPriority = "Medium"
