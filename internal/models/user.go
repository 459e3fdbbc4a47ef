package models

// User is the acting session user. The materializer stamps approved_by
// with the user's full name.
type User struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// FullName joins first and last name the way the approval stamp expects.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
