package usecase

import (
	"context"
	"sync"

	"shopp_backend/internal/feature/auth/domain/entity"
)

// CartRepository abstracts the persistence layer for per-user cart state.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CartRepository interface {
	// GetCart loads the full cart mapping for a user.
	// It returns ErrUserNotFound if the user does not exist.
	GetCart(ctx context.Context, userID uint) (entity.CartData, error)

	// SaveCart writes the cart mapping back, touching only the cart column.
	// It returns ErrUserNotFound if the user does not exist.
	SaveCart(ctx context.Context, userID uint, cart entity.CartData) error
}

// cartUsecase mutates a single user's cart slot counts.
//
// The load-mutate-save cycle is guarded by a per-user mutex so concurrent
// requests for the same user cannot lose updates. This is sufficient for a
// single-process deployment; a multi-instance deployment would need a
// DB-level atomic increment instead.
type cartUsecase struct {
	carts CartRepository

	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

// NewCartUsecase creates a new instance of cartUsecase.
func NewCartUsecase(carts CartRepository) *cartUsecase {
	return &cartUsecase{
		carts: carts,
		locks: make(map[uint]*sync.Mutex),
	}
}

// userLock returns the mutex guarding a single user's cart.
func (u *cartUsecase) userLock(userID uint) *sync.Mutex {
	u.mu.Lock()
	defer u.mu.Unlock()
	l, ok := u.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		u.locks[userID] = l
	}
	return l
}

// validateSlot rejects slots outside the fixed cart key space.
func validateSlot(slot int) error {
	if slot < 0 || slot >= entity.CartSlots {
		return ErrInvalidSlot
	}
	return nil
}

// Add increases the quantity at slot by exactly 1.
func (u *cartUsecase) Add(ctx context.Context, userID uint, slot int) error {
	if err := validateSlot(slot); err != nil {
		return err
	}

	l := u.userLock(userID)
	l.Lock()
	defer l.Unlock()

	cart, err := u.carts.GetCart(ctx, userID)
	if err != nil {
		return err
	}
	cart[slot]++
	return u.carts.SaveCart(ctx, userID, cart)
}

// Remove decreases the quantity at slot by 1, floored at zero.
// Removing from an empty slot is a no-op and performs no write.
func (u *cartUsecase) Remove(ctx context.Context, userID uint, slot int) error {
	if err := validateSlot(slot); err != nil {
		return err
	}

	l := u.userLock(userID)
	l.Lock()
	defer l.Unlock()

	cart, err := u.carts.GetCart(ctx, userID)
	if err != nil {
		return err
	}
	if cart[slot] <= 0 {
		return nil
	}
	cart[slot]--
	return u.carts.SaveCart(ctx, userID, cart)
}

// Get returns the full cart mapping for the user.
func (u *cartUsecase) Get(ctx context.Context, userID uint) (entity.CartData, error) {
	return u.carts.GetCart(ctx, userID)
}
