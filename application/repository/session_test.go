package repository

import (
	"testing"
	"time"

	"veriface.io/entities"
)

func newTestRecord(id string) *SessionRecord {
	return &SessionRecord{
		Session: &entities.Session{
			ID:        id,
			UserID:    "user-1",
			Status:    entities.SessionActive,
			CreatedAt: time.Now(),
		},
	}
}

func TestSessionStoreSaveAndFind(t *testing.T) {
	store := SessionRepo()
	record := newTestRecord("find-me")
	store.Save(record)

	found := store.FindByID("find-me")
	if found == nil {
		t.Fatal("expected to find the saved session")
	}
	if found.Session.UserID != "user-1" {
		t.Errorf("UserID = %s, want user-1", found.Session.UserID)
	}
	if found != record {
		t.Error("expected the same record pointer, not a copy")
	}
}

func TestSessionStoreMissingSession(t *testing.T) {
	if SessionRepo().FindByID("never-created") != nil {
		t.Error("expected nil for an unknown session id")
	}
}

func TestSessionStoreDelete(t *testing.T) {
	store := SessionRepo()
	store.Save(newTestRecord("to-delete"))
	store.Delete("to-delete")
	if store.FindByID("to-delete") != nil {
		t.Error("expected session to be gone after delete")
	}
}

func TestSessionStoreTouchKeepsSessionAlive(t *testing.T) {
	store := SessionRepo()
	store.Save(newTestRecord("touched"))
	store.Touch("touched")
	if store.FindByID("touched") == nil {
		t.Error("touched session must remain retrievable")
	}
}
