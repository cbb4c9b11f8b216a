package app

import "readinglog/internal/store"

// recordScope is the store filter for child-scoped collections (records and
// wishlist). With no active child every row of the user is visible. Books
// and children are always user-scoped.
func recordScope(userID, activeChildID string) store.Scope {
	return store.Scope{UserID: userID, ChildID: activeChildID}
}
