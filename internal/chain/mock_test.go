package chain

import (
	"context"
	"testing"
)

func TestMockMintBadge(t *testing.T) {
	a := NewMockAdapter(StellarTestnet)
	ctx := context.Background()

	res, err := a.MintBadge(ctx, "GABC123", "badge-wallet-master")
	if err != nil {
		t.Fatalf("MintBadge: %v", err)
	}
	if !res.Success {
		t.Fatalf("mint failed: %s", res.Error)
	}
	if res.TxHash == "" {
		t.Error("empty txHash on successful mint")
	}
	if res.Network != "stellar-testnet" {
		t.Errorf("network = %q, want stellar-testnet", res.Network)
	}

	has, err := a.HasBadge(ctx, "GABC123", "badge-wallet-master")
	if err != nil {
		t.Fatalf("HasBadge: %v", err)
	}
	if !has {
		t.Error("minted badge not reported by HasBadge")
	}

	has, _ = a.HasBadge(ctx, "GABC123", "badge-first-tx")
	if has {
		t.Error("unminted badge reported by HasBadge")
	}
}

func TestMockMintBadgeNoAddress(t *testing.T) {
	a := NewMockAdapter(StellarTestnet)

	res, err := a.MintBadge(context.Background(), "", "badge-wallet-master")
	if err != nil {
		t.Fatalf("MintBadge: %v", err)
	}
	if res.Success {
		t.Error("mint to empty address succeeded")
	}
	if res.Error == "" {
		t.Error("failed mint carries no error message")
	}
}

func TestMockMintCancelledContext(t *testing.T) {
	a := NewMockAdapter(StellarTestnet)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := a.MintBadge(ctx, "GABC123", "badge-wallet-master"); err == nil {
		t.Error("mint with cancelled context did not error")
	}
}
