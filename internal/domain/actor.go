package domain

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Actor is the authenticated caller as seen by services. Employee-role
// actors carry the Employee record they are linked to; that link drives all
// row-level scoping.
type Actor struct {
	UserID         string
	Role           string
	EmployeeID     string
	EmployeeNumber string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
