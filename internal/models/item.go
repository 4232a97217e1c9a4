package models

import "time"

// ItemType classifies catalog items
type ItemType string

const (
	ItemConsumable  ItemType = "consumable"
	ItemSkin        ItemType = "skin"
	ItemEnvironment ItemType = "environment"
	ItemRevival     ItemType = "revival"
)

// Item is a catalog entry: food, skins, environments, revival tokens
type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Type        ItemType `json:"type"`
	Rarity      string   `json:"rarity"`
	EffectStat  string   `json:"effectStat,omitempty"`
	EffectValue int      `json:"effectValue,omitempty"`
}

// UserItem is an inventory row: how many of an item a user owns
type UserItem struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	ItemID     string    `json:"itemId"`
	Quantity   int       `json:"quantity"`
	AcquiredAt time.Time `json:"acquiredAt"`
}
