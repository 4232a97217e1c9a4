// Package chain defines the on-chain adapter boundary. The core never
// builds or submits transactions itself; it hands mint requests to an
// Adapter and records whatever result comes back.
package chain

import (
	"context"
	"errors"
)

// Network identifies the chain environment an adapter talks to.
type Network string

const (
	StellarTestnet Network = "stellar-testnet"
	StellarMainnet Network = "stellar-mainnet"
)

var ErrNotConnected = errors.New("chain: adapter not connected")

// TxResult is the outcome of a submitted transaction.
type TxResult struct {
	Success bool   `json:"success"`
	TxHash  string `json:"txHash"`
	Network string `json:"network"`
	Error   string `json:"error,omitempty"`
}

// Adapter abstracts badge and item operations on a blockchain backend.
// Implementations decide how (or whether) transactions actually reach a
// network; callers only see the result.
type Adapter interface {
	Network() Network

	// MintBadge mints the badge credential to the given address. A
	// failed mint is reported in the TxResult, not as an error; errors
	// are reserved for the adapter itself being unusable.
	MintBadge(ctx context.Context, address, badgeID string) (TxResult, error)

	// HasBadge reports whether the address already holds the badge.
	HasBadge(ctx context.Context, address, badgeID string) (bool, error)

	// MintItem mints an item NFT to the given address.
	MintItem(ctx context.Context, address, itemID string) (TxResult, error)

	// ExplorerURL returns a human-viewable link for a transaction.
	ExplorerURL(txHash string) string
}
