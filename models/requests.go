package models

// RegisterRequest carries the fields of a sign-up attempt through the
// service layer. Email is expected in canonical (lowercased, trimmed) form
// by the time the request reaches validation.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}
