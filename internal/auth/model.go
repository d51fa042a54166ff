package auth

// User is the domain entity.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}

// Session is the authenticated identity carried by a bearer token.
type Session struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}
