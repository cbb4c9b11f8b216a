package app

import (
	"context"
	"fmt"

	"readinglog/internal/entity"
)

// FetchReadingRecords reloads the records of the active child, or of every
// child when none is selected, each joined with its book.
func (s *Session) FetchReadingRecords(ctx context.Context) ([]entity.ReadingRecord, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	s.recordsMu.Lock()
	defer s.recordsMu.Unlock()

	err := s.reloadRecords(ctx)
	return s.Records(), err
}

// reloadRecords is a no-op on the collection when the selection changed
// while the query ran; the reload triggered by that change wins.
func (s *Session) reloadRecords(ctx context.Context) error {
	active := s.ActiveChildID()
	records, err := s.gw.Records.ListReadingRecords(ctx, recordScope(s.userID, active))
	if err != nil {
		s.fetchFailed("records", err)
		return fmt.Errorf("fetch reading records: %w", err)
	}
	s.mu.Lock()
	if s.activeChildID == active {
		s.records = records
	}
	s.mu.Unlock()
	return nil
}

// AddReadingRecord stores a record for in.ChildID, or the active child when
// it is empty, and returns the reloaded records.
func (s *Session) AddReadingRecord(ctx context.Context, in entity.ReadingRecordInput) ([]entity.ReadingRecord, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	if in.ChildID == "" {
		in.ChildID = s.ActiveChildID()
	}
	if in.ChildID == "" {
		return nil, ErrNoActiveChild
	}
	if err := validate(in); err != nil {
		return nil, err
	}

	err := s.mutate(OpSaveRecord, &s.recordsMu,
		func() error {
			if _, err := s.gw.Records.CreateReadingRecord(ctx, s.userID, in); err != nil {
				return fmt.Errorf("create reading record: %w", err)
			}
			return nil
		},
		func() error { return s.reloadRecords(ctx) },
	)
	if err != nil {
		return nil, err
	}
	return s.Records(), nil
}

// UpdateReadingRecord replaces book, rating, review and read date of a
// record. A non-empty in.ChildID moves the record to that child.
func (s *Session) UpdateReadingRecord(ctx context.Context, id string, in entity.ReadingRecordInput) ([]entity.ReadingRecord, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	err := s.mutate(OpSaveRecord, &s.recordsMu,
		func() error {
			if _, err := s.gw.Records.UpdateReadingRecord(ctx, s.userID, id, in); err != nil {
				return fmt.Errorf("update reading record: %w", err)
			}
			return nil
		},
		func() error { return s.reloadRecords(ctx) },
	)
	if err != nil {
		return nil, err
	}
	return s.Records(), nil
}

func (s *Session) DeleteReadingRecord(ctx context.Context, id string) ([]entity.ReadingRecord, error) {
	err := s.mutate(OpDeleteRecord, &s.recordsMu,
		func() error {
			if err := s.gw.Records.DeleteReadingRecord(ctx, s.userID, id); err != nil {
				return fmt.Errorf("delete reading record: %w", err)
			}
			return nil
		},
		func() error { return s.reloadRecords(ctx) },
	)
	if err != nil {
		return nil, err
	}
	return s.Records(), nil
}
