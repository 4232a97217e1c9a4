package chain

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

// MockAdapter simulates a Stellar backend in memory. Mints always
// succeed and produce a deterministic-looking hash; minted badges are
// remembered so HasBadge answers consistently within a process.
type MockAdapter struct {
	network Network

	mu     sync.Mutex
	minted map[string]bool // address + ":" + badgeID
	now    func() time.Time
}

func NewMockAdapter(network Network) *MockAdapter {
	return &MockAdapter{
		network: network,
		minted:  make(map[string]bool),
		now:     time.Now,
	}
}

func (a *MockAdapter) Network() Network { return a.network }

func (a *MockAdapter) MintBadge(ctx context.Context, address, badgeID string) (TxResult, error) {
	if err := ctx.Err(); err != nil {
		return TxResult{}, err
	}
	if address == "" {
		return TxResult{
			Success: false,
			Network: string(a.network),
			Error:   "no wallet address",
		}, nil
	}

	a.mu.Lock()
	a.minted[address+":"+badgeID] = true
	a.mu.Unlock()

	return TxResult{
		Success: true,
		TxHash:  a.txHash("badge", address, badgeID),
		Network: string(a.network),
	}, nil
}

func (a *MockAdapter) HasBadge(ctx context.Context, address, badgeID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.minted[address+":"+badgeID], nil
}

func (a *MockAdapter) MintItem(ctx context.Context, address, itemID string) (TxResult, error) {
	if err := ctx.Err(); err != nil {
		return TxResult{}, err
	}
	if address == "" {
		return TxResult{
			Success: false,
			Network: string(a.network),
			Error:   "no wallet address",
		}, nil
	}
	return TxResult{
		Success: true,
		TxHash:  a.txHash("item", address, itemID),
		Network: string(a.network),
	}, nil
}

func (a *MockAdapter) ExplorerURL(txHash string) string {
	if a.network == StellarMainnet {
		return "https://stellar.expert/explorer/public/tx/" + txHash
	}
	return "https://stellar.expert/explorer/testnet/tx/" + txHash
}

func (a *MockAdapter) txHash(kind, address, assetID string) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%s:%s:%s:%d", kind, address, assetID, a.now().UnixNano()))
	return hex.EncodeToString(sum[:])
}
