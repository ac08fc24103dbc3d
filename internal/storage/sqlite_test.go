package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	want := Match{
		Winner:         WinnerPlayer,
		PlayerReward:   -12,
		ComputerReward: -20,
		Turns:          17,
		PlayerFinal:    30,
		ComputerFinal:  26,
		Seed:           42,
	}
	id, err := store.SaveMatch(want)
	if err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveMatch() id %q is not a UUID: %v", id, err)
	}

	got, err := store.MatchByID(id)
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	want.ID = id
	want.CreatedAt = got.CreatedAt
	if got != want {
		t.Errorf("MatchByID() = %+v, want %+v", got, want)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt was not set")
	}
	if !got.PlayerWon() {
		t.Error("PlayerWon() = false")
	}
}

func TestStoreKeepsGivenID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveMatch(Match{ID: "fixed-id", Winner: WinnerComputer})
	if err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if id != "fixed-id" {
		t.Errorf("id = %q, want fixed-id", id)
	}

	if _, err := store.SaveMatch(Match{ID: "fixed-id", Winner: WinnerComputer}); err == nil {
		t.Error("expected duplicate ID to fail")
	}
}

func TestStoreRejectsUnknownWinner(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveMatch(Match{Winner: "nobody"}); err == nil {
		t.Error("expected error for unknown winner")
	}
}

func TestStoreMatchNotFound(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.MatchByID("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("MatchByID() error = %v, want ErrNotFound", err)
	}
}

func TestStoreRecentMatches(t *testing.T) {
	store := openTestStore(t)

	var ids []string
	for i := 0; i < 5; i++ {
		id, err := store.SaveMatch(Match{Winner: WinnerComputer, Turns: i + 1})
		if err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
		ids = append(ids, id)
	}

	recent, err := store.RecentMatches(3)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 matches, got %d", len(recent))
	}
	// Newest first
	for i, m := range recent {
		if m.ID != ids[4-i] {
			t.Errorf("recent[%d] = %s, want %s", i, m.ID, ids[4-i])
		}
	}
}

func TestStoreTopRewards(t *testing.T) {
	store := openTestStore(t)

	matches := []Match{
		{Winner: WinnerPlayer, PlayerReward: -10, Turns: 9},
		{Winner: WinnerPlayer, PlayerReward: 4, Turns: 6},
		{Winner: WinnerComputer, PlayerReward: 50, Turns: 3},
		{Winner: WinnerPlayer, PlayerReward: -2, Turns: 8},
	}
	for _, m := range matches {
		if _, err := store.SaveMatch(m); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	top, err := store.TopRewards(10)
	if err != nil {
		t.Fatalf("TopRewards() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 wins, got %d", len(top))
	}

	want := []int{4, -2, -10}
	for i, m := range top {
		if m.PlayerReward != want[i] {
			t.Errorf("top[%d].PlayerReward = %d, want %d", i, m.PlayerReward, want[i])
		}
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Games != 0 || empty.WinRate() != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Stats() on empty store = %+v", empty)
	}

	for _, m := range []Match{
		{Winner: WinnerPlayer, PlayerReward: 3, Turns: 10},
		{Winner: WinnerComputer, PlayerReward: 9, Turns: 20},
		{Winner: WinnerPlayer, PlayerReward: -5, Turns: 30},
		{Winner: WinnerComputer, Turns: 20},
	} {
		if _, err := store.SaveMatch(m); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Games != 4 || st.Wins != 2 || st.Losses != 2 {
		t.Errorf("games/wins/losses = %d/%d/%d, want 4/2/2", st.Games, st.Wins, st.Losses)
	}
	if st.AvgTurns != 20 {
		t.Errorf("AvgTurns = %v, want 20", st.AvgTurns)
	}
	if st.BestReward != 3 {
		t.Errorf("BestReward = %d, want 3", st.BestReward)
	}
	if st.WinRate() != 0.5 {
		t.Errorf("WinRate() = %v, want 0.5", st.WinRate())
	}
	if st.LastPlayed.IsZero() {
		t.Error("LastPlayed was not set")
	}
}

func TestStoreClearMatches(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveMatch(Match{Winner: WinnerPlayer}); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if err := store.ClearMatches(); err != nil {
		t.Fatalf("ClearMatches() failed: %v", err)
	}

	recent, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recent) != 0 {
		t.Errorf("Expected no matches after clear, got %d", len(recent))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
