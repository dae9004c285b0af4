package dto

// SessionResponse carries a freshly issued anonymous session token
type SessionResponse struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"` // seconds
}
