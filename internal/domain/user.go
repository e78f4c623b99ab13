package domain

// User represents an EventConnect account as the backend reports it.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// NewUser returns a new User with the given fields.
func NewUser(id int, name, email, role string) *User {
	return &User{
		ID:    id,
		Name:  name,
		Email: email,
		Role:  role,
	}
}

// Credentials is the input for a login call.
type Credentials struct {
	Email    string
	Password string
}

// Signup is the input for an account registration call.
type Signup struct {
	Name     string
	Email    string
	Password string
}

// UserUpdate carries the mutable profile fields. Nil fields are left untouched
// by the backend.
type UserUpdate struct {
	Name  *string
	Email *string
	Role  *string
}
