package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"cryptopet/internal/database"
	"cryptopet/internal/models"
)

// ErrItemNotOwned is returned when consuming an item the user does not hold
var ErrItemNotOwned = errors.New("item not in inventory")

// ItemRepository handles database operations for user inventories
type ItemRepository struct {
	db database.DBTX
}

// NewItemRepository creates a new item repository
func NewItemRepository(db database.DBTX) *ItemRepository {
	return &ItemRepository{db: db}
}

// GrantItem adds quantity of an item to the user's inventory
func (r *ItemRepository) GrantItem(userID, itemID string, quantity int) error {
	update := `
		UPDATE user_items
		SET quantity = quantity + ?
		WHERE user_id = ? AND item_id = ?
	`
	result, err := r.db.Exec(update, quantity, userID, itemID)
	if err != nil {
		return fmt.Errorf("failed to grant item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read grant result: %w", err)
	}
	if rows == 0 {
		insert := "INSERT INTO user_items (id, user_id, item_id, quantity) VALUES (?, ?, ?, ?)"
		if _, err := r.db.Exec(insert, uuid.NewString(), userID, itemID, quantity); err != nil {
			return fmt.Errorf("failed to insert inventory row: %w", err)
		}
	}
	return nil
}

// ConsumeItem decrements one unit of an item. The guarded UPDATE makes
// concurrent consumes of the last unit fail instead of going negative.
func (r *ItemRepository) ConsumeItem(userID, itemID string) error {
	query := `
		UPDATE user_items
		SET quantity = quantity - 1
		WHERE user_id = ? AND item_id = ? AND quantity > 0
	`
	result, err := r.db.Exec(query, userID, itemID)
	if err != nil {
		return fmt.Errorf("failed to consume item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read consume result: %w", err)
	}
	if rows == 0 {
		return ErrItemNotOwned
	}
	return nil
}

// ListInventory returns the user's inventory rows with positive quantity
func (r *ItemRepository) ListInventory(userID string) ([]models.UserItem, error) {
	query := `
		SELECT id, user_id, item_id, quantity, acquired_at
		FROM user_items
		WHERE user_id = ? AND quantity > 0
		ORDER BY acquired_at
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory: %w", err)
	}
	defer rows.Close()

	var items []models.UserItem
	for rows.Next() {
		var it models.UserItem
		if err := rows.Scan(&it.ID, &it.UserID, &it.ItemID, &it.Quantity, &it.AcquiredAt); err != nil {
			return nil, fmt.Errorf("failed to scan inventory row: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// GetQuantity returns how many of an item the user holds
func (r *ItemRepository) GetQuantity(userID, itemID string) (int, error) {
	query := "SELECT COALESCE(SUM(quantity), 0) FROM user_items WHERE user_id = ? AND item_id = ?"
	var qty int
	if err := r.db.QueryRow(query, userID, itemID).Scan(&qty); err != nil {
		return 0, fmt.Errorf("failed to get item quantity: %w", err)
	}
	return qty, nil
}
