package models

// LoginRequest carries the shared dashboard access code
type LoginRequest struct {
	AccessCode string `json:"access_code" binding:"required"`
}

// LoginResponse returns the session token; the same token is also set as an
// httpOnly cookie for browser clients
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"` // seconds
}
