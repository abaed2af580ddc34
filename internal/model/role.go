package model

// Role names the kind of principal a credential was issued to.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStaff   Role = "staff"
	RoleStudent Role = "student"
)

// Identity is the claim set carried inside a session token.
type Identity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// Principal is the result of resolving a login. Exactly one of
// AdminPrincipal, StaffPrincipal or StudentPrincipal.
type Principal interface {
	Identity() Identity
	isPrincipal()
}

// AdminPrincipal is the configured hostel administrator. It has no stored record.
type AdminPrincipal struct {
	ID   string
	Name string
}

func (p AdminPrincipal) Identity() Identity {
	return Identity{ID: p.ID, Name: p.Name, Role: RoleAdmin}
}

func (AdminPrincipal) isPrincipal() {}

// StaffPrincipal wraps the matched staff record.
type StaffPrincipal struct {
	Staff *Staff
}

func (p StaffPrincipal) Identity() Identity {
	return Identity{ID: p.Staff.ID.String(), Name: p.Staff.Name, Role: RoleStaff}
}

func (StaffPrincipal) isPrincipal() {}

// StudentPrincipal wraps the matched student record.
type StudentPrincipal struct {
	Student *Student
}

func (p StudentPrincipal) Identity() Identity {
	return Identity{ID: p.Student.ID.String(), Name: p.Student.Name, Role: RoleStudent}
}

func (StudentPrincipal) isPrincipal() {}

// LoginRequest is the payload for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,max=128"`
}
