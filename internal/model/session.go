package model

import "time"

// PassphraseRequest carries the owner passphrase for setup and unlock.
type PassphraseRequest struct {
	Passphrase string `json:"passphrase"`
}

// SessionResponse returns a session token after a successful setup or unlock.
type SessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionStatusResponse reports whether an owner passphrase is configured.
type SessionStatusResponse struct {
	Initialized bool `json:"initialized"`
}
