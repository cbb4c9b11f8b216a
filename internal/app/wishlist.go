package app

import (
	"context"
	"fmt"
	"strings"

	"readinglog/internal/entity"
)

// FetchWishlist reloads the wishlist of the active child, or of every child
// when none is selected.
func (s *Session) FetchWishlist(ctx context.Context) ([]entity.WishlistEntry, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	s.wishlistMu.Lock()
	defer s.wishlistMu.Unlock()

	err := s.reloadWishlist(ctx)
	return s.Wishlist(), err
}

func (s *Session) reloadWishlist(ctx context.Context) error {
	active := s.ActiveChildID()
	entries, err := s.gw.Wishlist.ListWishlist(ctx, recordScope(s.userID, active))
	if err != nil {
		s.fetchFailed("wishlist", err)
		return fmt.Errorf("fetch wishlist: %w", err)
	}
	s.mu.Lock()
	if s.activeChildID == active {
		s.wishlist = entries
	}
	s.mu.Unlock()
	return nil
}

// AddToWishlist copies a catalog result into the active child's wishlist.
// It fails with ErrNoActiveChild, without contacting the store, when no
// child is selected.
func (s *Session) AddToWishlist(ctx context.Context, res entity.CatalogResult) ([]entity.WishlistEntry, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	active := s.ActiveChildID()
	if active == "" {
		return nil, ErrNoActiveChild
	}
	if strings.TrimSpace(res.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	err := s.mutate(OpAddWishlist, &s.wishlistMu,
		func() error {
			if _, err := s.gw.Wishlist.CreateWishlistEntry(ctx, s.userID, res.WishlistInput(active)); err != nil {
				return fmt.Errorf("add to wishlist: %w", err)
			}
			return nil
		},
		func() error { return s.reloadWishlist(ctx) },
	)
	if err != nil {
		return nil, err
	}
	return s.Wishlist(), nil
}

func (s *Session) RemoveFromWishlist(ctx context.Context, id string) ([]entity.WishlistEntry, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	if s.ActiveChildID() == "" {
		return nil, ErrNoActiveChild
	}
	err := s.mutate(OpRemoveWishlist, &s.wishlistMu,
		func() error {
			if err := s.gw.Wishlist.DeleteWishlistEntry(ctx, s.userID, id); err != nil {
				return fmt.Errorf("remove from wishlist: %w", err)
			}
			return nil
		},
		func() error { return s.reloadWishlist(ctx) },
	)
	if err != nil {
		return nil, err
	}
	return s.Wishlist(), nil
}
