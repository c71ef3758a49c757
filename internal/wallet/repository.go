package wallet

import (
	"context"
	"fmt"
	"sync"

	"github.com/crossrent/crossrent/internal/apperr"
)

// Repository stores wallet records for the lifetime of the process.
type Repository interface {
	Create(ctx context.Context, wallet Wallet) error
	Get(ctx context.Context, id string) (Wallet, error)
	Count(ctx context.Context) (int, error)
}

type memoryRepository struct {
	mu      sync.RWMutex
	storage map[string]Wallet
}

// NewMemoryRepository constructs the in-memory wallet store.
func NewMemoryRepository() Repository {
	return &memoryRepository{storage: make(map[string]Wallet)}
}

func (r *memoryRepository) Create(_ context.Context, wallet Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.storage[wallet.ID]; exists {
		return fmt.Errorf("wallet %s already exists: %w", wallet.ID, apperr.ErrInvalidRequest)
	}
	r.storage[wallet.ID] = wallet
	return nil
}

func (r *memoryRepository) Get(_ context.Context, id string) (Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	wallet, ok := r.storage[id]
	if !ok {
		return Wallet{}, fmt.Errorf("wallet %s: %w", id, apperr.ErrWalletNotFound)
	}
	return wallet, nil
}

func (r *memoryRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.storage), nil
}
