package repository

import (
	"testing"
)

func TestNewHistoryRepository(t *testing.T) {
	repo := NewHistoryRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil HistoryRepository")
	}
	if repo.db != nil {
		t.Fatal("expected nil db when constructed with nil")
	}
}

func TestNewMasterRepository(t *testing.T) {
	repo := NewMasterRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil MasterRepository")
	}
}

func TestSentinelErrors(t *testing.T) {
	if ErrNoMasterSecret == nil {
		t.Fatal("ErrNoMasterSecret should not be nil")
	}
}
