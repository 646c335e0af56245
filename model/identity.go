package model

// Identity is the authenticated buyer as returned by GET /me.
type Identity struct {
	Id    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}
