package model

import "time"

// VerificationCode is a one-time phone login code. Only a bcrypt hash of
// the 6-digit code is kept; the plaintext exists solely in the delivery
// message.
type VerificationCode struct {
	ID        string    `json:"id"`
	Phone     string    `json:"phone"`
	CodeHash  []byte    `json:"-"`
	Attempts  int       `json:"attempts"`
	IsUsed    bool      `json:"isUsed"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session is a login session. TokenDigest is the SHA-256 hex digest of
// the signed JWT; the raw token is never stored.
type Session struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	TokenDigest string    `json:"-"`
	IsActive    bool      `json:"isActive"`
	ExpiresAt   time.Time `json:"expiresAt"`
	CreatedAt   time.Time `json:"createdAt"`
}
