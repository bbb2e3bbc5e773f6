package models

// Default user role when none is supplied on creation.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// User is a CMS account. The password is stored as given and must never leave
// the API; use Sanitized before returning a user to a caller.
type User struct {
	ID        int64  `json:"id" bson:"id"`
	Username  string `json:"username" bson:"username"`
	Password  string `json:"password,omitempty" bson:"password"`
	Role      string `json:"role" bson:"role"`
	Email     string `json:"email" bson:"email"`
	Timestamp string `json:"timestamp" bson:"timestamp"`
}

func (u User) RecordID() int64 { return u.ID }

// Sanitized returns a copy of u without the password.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// SanitizeUsers strips the password from every user in the slice copy.
func SanitizeUsers(in []User) []User {
	out := make([]User, 0, len(in))
	for _, u := range in {
		out = append(out, u.Sanitized())
	}
	return out
}
