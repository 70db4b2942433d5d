package models

// User is the authenticated user's profile as returned by GET /api/user/auth.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Member is the member-dashboard payload: profile plus order history.
type Member struct {
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Orders []Order `json:"orders"`
}

// TokenResponse carries the token issued by PUT /api/user/auth.
type TokenResponse struct {
	Token string `json:"token"`
}
