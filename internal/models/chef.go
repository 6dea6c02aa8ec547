package models

// Chef is an account allowed to drive the kitchen API.
type Chef struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
