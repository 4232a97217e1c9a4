package models

import "time"

// WalletType identifies how the user authenticates
type WalletType string

const (
	WalletPrivy     WalletType = "privy"
	WalletFreighter WalletType = "freighter"
)

// IsValid reports whether the wallet type is supported
func (w WalletType) IsValid() bool {
	return w == WalletPrivy || w == WalletFreighter
}

// User is an authenticated account, keyed by wallet address
type User struct {
	ID          string     `json:"id"`
	Address     string     `json:"address"`
	Email       *string    `json:"email,omitempty"`
	DisplayName string     `json:"displayName"`
	WalletType  WalletType `json:"walletType"`
	Streak      int        `json:"streak"`
	LastClaimAt *time.Time `json:"lastClaimAt,omitempty"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Session is a server-side login session. Only a bcrypt hash of the
// bearer token is stored; the token itself lives in the client's JWT.
type Session struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the session has passed its expiry time
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
