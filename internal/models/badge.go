package models

import "time"

// Badge is a credential earned by completing a module, nominally
// backed by an on-chain mint
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ModuleID    string `json:"moduleId"`
	ImageURL    string `json:"imageUrl"`
}

// UserBadge records a badge earned by a user, with the mint transaction
type UserBadge struct {
	ID       string    `json:"id"`
	UserID   string    `json:"userId"`
	BadgeID  string    `json:"badgeId"`
	TxHash   string    `json:"txHash"`
	Network  string    `json:"network"`
	MintedAt time.Time `json:"mintedAt"`
}
