package types

// User is a registered club member. Names double as the login
// identifier and are unique case-insensitively. Passwords are stored
// and compared verbatim; the application offers nothing stronger.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Password string `json:"password"`
}
