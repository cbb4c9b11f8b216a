package app

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"readinglog/internal/entity"
	"readinglog/internal/prefs"
	"readinglog/internal/validation"
)

// FetchChildren reloads the children, newest first. When no valid child is
// selected and the list is not empty, the first child becomes active and is
// persisted, and the child-scoped collections are reloaded. On failure the
// previous list is returned with the error.
func (s *Session) FetchChildren(ctx context.Context) ([]entity.Child, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	s.childrenMu.Lock()
	defer s.childrenMu.Unlock()

	changed, err := s.reloadChildren(ctx)
	if changed {
		err = errors.Join(err, s.reloadScoped(ctx))
	}
	return s.Children(), err
}

// reloadChildren replaces the children and repairs the active selection.
// Callers hold childrenMu.
func (s *Session) reloadChildren(ctx context.Context) (activeChanged bool, err error) {
	children, err := s.gw.Children.ListChildren(ctx, s.userID)
	if err != nil {
		s.fetchFailed("children", err)
		return false, fmt.Errorf("fetch children: %w", err)
	}

	s.mu.Lock()
	s.children = children
	prev := s.activeChildID
	switch {
	case len(children) == 0:
		s.activeChildID = ""
	case prev == "" || !containsChild(children, prev):
		s.activeChildID = children[0].ID
	}
	next := s.activeChildID
	s.mu.Unlock()

	if next == prev {
		return false, nil
	}
	s.persistActive(ctx, next)
	return true, nil
}

// SetActiveChild selects the child whose records and wishlist are shown and
// reloads exactly those two collections. A nil id clears the selection so
// both collections cover every child. Reload failures are returned after the
// selection has been applied.
func (s *Session) SetActiveChild(ctx context.Context, id *string) error {
	if err := s.checkOpen(); err != nil {
		return err
	}

	next := ""
	if id != nil {
		next = *id
		s.mu.RLock()
		known := containsChild(s.children, next)
		s.mu.RUnlock()
		if !known {
			return fmt.Errorf("%w: %s", ErrUnknownChild, next)
		}
	}

	s.mu.Lock()
	s.activeChildID = next
	s.mu.Unlock()
	s.persistActive(ctx, next)

	return s.reloadScoped(ctx)
}

// reloadScoped reloads records and wishlist for the current selection.
func (s *Session) reloadScoped(ctx context.Context) error {
	s.recordsMu.Lock()
	recErr := s.reloadRecords(ctx)
	s.recordsMu.Unlock()

	s.wishlistMu.Lock()
	wishErr := s.reloadWishlist(ctx)
	s.wishlistMu.Unlock()

	return errors.Join(recErr, wishErr)
}

func (s *Session) persistActive(ctx context.Context, id string) {
	var err error
	if id == "" {
		err = s.prefs.Delete(ctx, s.userID, prefs.KeyActiveChild)
	} else {
		err = s.prefs.Set(ctx, s.userID, prefs.KeyActiveChild, id)
	}
	if err != nil {
		s.log.WithError(err).WithField("child_id", id).Warn("failed to persist active child")
	}
}

// AddChild creates a child, reloads the children and makes the new child
// active.
func (s *Session) AddChild(ctx context.Context, in entity.ChildInput) ([]entity.Child, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	var created entity.Child
	err := s.mutate(OpSaveChild, &s.childrenMu,
		func() error {
			c, err := s.gw.Children.CreateChild(ctx, s.userID, in)
			if err != nil {
				return fmt.Errorf("create child: %w", err)
			}
			created = c
			return nil
		},
		func() error {
			s.mu.Lock()
			s.activeChildID = created.ID
			s.mu.Unlock()
			s.persistActive(ctx, created.ID)
			_, err := s.reloadChildren(ctx)
			return errors.Join(err, s.reloadScoped(ctx))
		},
	)
	if err != nil {
		return nil, err
	}
	return s.Children(), nil
}

// AddChildren creates several children at once, as done during onboarding.
// Rows with neither name nor birthday are skipped. Creation stops at the
// first failure; children created before it are kept and shown.
func (s *Session) AddChildren(ctx context.Context, batch []entity.ChildInput) ([]entity.Child, error) {
	rows, err := onboardingRows(batch)
	if err != nil {
		return nil, err
	}
	if err := s.begin(OpSaveChild); err != nil {
		return nil, err
	}
	defer s.guard.end(OpSaveChild)

	s.childrenMu.Lock()
	defer s.childrenMu.Unlock()

	var createErr error
	created := 0
	for _, in := range rows {
		if _, err := s.gw.Children.CreateChild(ctx, s.userID, in); err != nil {
			createErr = fmt.Errorf("create child %q: %w", in.Name, err)
			break
		}
		created++
	}
	s.metrics.ObserveMutation(string(OpSaveChild), createErr)
	if createErr != nil {
		s.log.WithError(createErr).WithField("created", created).Warn("batch child creation stopped")
	}

	if created > 0 {
		changed, err := s.reloadChildren(ctx)
		if err != nil {
			s.log.WithError(err).Warn("reload after batch creation failed, keeping previous collection")
		}
		if changed {
			if err := s.reloadScoped(ctx); err != nil {
				s.log.WithError(err).Warn("reload of scoped collections failed")
			}
		}
	}
	if createErr != nil {
		return s.Children(), createErr
	}
	return s.Children(), nil
}

func onboardingRows(batch []entity.ChildInput) ([]entity.ChildInput, error) {
	verr := &validation.Error{}
	var rows []entity.ChildInput
	for i, in := range batch {
		in.Name = strings.TrimSpace(in.Name)
		in.Birthday = strings.TrimSpace(in.Birthday)
		if in.Name == "" && in.Birthday == "" {
			continue
		}
		if in.Name == "" {
			verr.Add(fmt.Sprintf("children[%d].name", i), "name is required")
		}
		if in.Birthday == "" {
			verr.Add(fmt.Sprintf("children[%d].birthday", i), "birthday is required")
		}
		rows = append(rows, in)
	}
	if len(rows) == 0 && len(verr.Fields) == 0 {
		verr.Add("children", "at least one child is required")
	}
	if err := verr.OrNil(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return rows, nil
}

// UpdateChild replaces the name and birthday of a child.
func (s *Session) UpdateChild(ctx context.Context, id string, in entity.ChildInput) ([]entity.Child, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	err := s.mutate(OpSaveChild, &s.childrenMu,
		func() error {
			if _, err := s.gw.Children.UpdateChild(ctx, s.userID, id, in); err != nil {
				return fmt.Errorf("update child: %w", err)
			}
			return nil
		},
		func() error {
			_, err := s.reloadChildren(ctx)
			return err
		},
	)
	if err != nil {
		return nil, err
	}
	return s.Children(), nil
}

// DeleteChild removes a child. The store drops the child's records and
// wishlist entries with it. Deleting the active child clears the persisted
// selection, so the reload selects the newest remaining child.
func (s *Session) DeleteChild(ctx context.Context, id string) ([]entity.Child, error) {
	err := s.mutate(OpDeleteChild, &s.childrenMu,
		func() error {
			if err := s.gw.Children.DeleteChild(ctx, s.userID, id); err != nil {
				return fmt.Errorf("delete child: %w", err)
			}
			return nil
		},
		func() error {
			s.mu.Lock()
			wasActive := s.activeChildID == id
			if wasActive {
				s.activeChildID = ""
			}
			s.mu.Unlock()
			if wasActive {
				s.persistActive(ctx, "")
			}

			changed, err := s.reloadChildren(ctx)
			if wasActive || changed || s.ActiveChildID() == "" {
				err = errors.Join(err, s.reloadScoped(ctx))
			}
			return err
		},
	)
	if err != nil {
		return nil, err
	}
	return s.Children(), nil
}

func containsChild(children []entity.Child, id string) bool {
	return slices.ContainsFunc(children, func(c entity.Child) bool { return c.ID == id })
}
