package storage

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

type blob struct {
	Name  string         `json:"name"`
	Items map[string]int `json:"items"`
}

func TestGetJSONRepairsMissingAndCorrupt(t *testing.T) {
	st := NewMemStore()
	fallback := blob{Name: "fresh", Items: map[string]int{}}

	got := GetJSON(st, "k", fallback)
	if got.Name != "fresh" {
		t.Fatalf("missing key returned %+v", got)
	}
	if st.Get("k", "") == "" {
		t.Fatalf("fallback not written back for missing key")
	}

	st.Set("k", "{broken")
	got = GetJSON(st, "k", fallback)
	if got.Name != "fresh" {
		t.Fatalf("corrupt value returned %+v", got)
	}
	if raw := st.Get("k", ""); raw == "{broken" {
		t.Fatalf("corrupt value left in place")
	}
}

func TestGetJSONReturnsClones(t *testing.T) {
	st := NewMemStore()
	fallback := blob{Name: "fresh", Items: map[string]int{}}

	first := GetJSON(st, "k", fallback)
	first.Items["mutated"] = 1

	second := GetJSON(st, "k", fallback)
	if len(second.Items) != 0 {
		t.Fatalf("mutation of one result leaked into the next: %v", second.Items)
	}
	if len(fallback.Items) != 0 {
		t.Fatalf("mutation leaked into the caller's fallback: %v", fallback.Items)
	}
}

func TestMemStoreBasics(t *testing.T) {
	st := NewMemStore()

	if got := st.Get("missing", "fb"); got != "fb" {
		t.Fatalf("Get missing = %q", got)
	}
	st.Set("b", "2")
	st.Set("a", "1")
	if got := st.Keys(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("Keys = %v", got)
	}

	before := st.ChangeToken()
	st.Remove("a")
	if st.ChangeToken() == before {
		t.Fatalf("ChangeToken unchanged after Remove")
	}
	if got := st.Get("a", "gone"); got != "gone" {
		t.Fatalf("Get removed = %q", got)
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pp.db")

	st, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer st.Close()

	st.Set("pp_stars_total", "5")
	st.Set("pp_streak_count", "2")
	if got := st.Get("pp_stars_total", ""); got != "5" {
		t.Fatalf("Get = %q, want 5", got)
	}

	// Upsert overwrites.
	st.Set("pp_stars_total", "6")
	if got := st.Get("pp_stars_total", ""); got != "6" {
		t.Fatalf("Get after upsert = %q, want 6", got)
	}

	if got := st.Keys(); !reflect.DeepEqual(got, []string{"pp_stars_total", "pp_streak_count"}) {
		t.Fatalf("Keys = %v", got)
	}

	st.Remove("pp_streak_count")
	if got := st.Get("pp_streak_count", "fb"); got != "fb" {
		t.Fatalf("Get removed = %q", got)
	}
}

func TestSQLiteStorePersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pp.db")

	st, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	st.Set("pp_last_play_date", "2024-03-10")
	if err := st.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	st2, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer st2.Close()
	if got := st2.Get("pp_last_play_date", ""); got != "2024-03-10" {
		t.Fatalf("value lost across opens: %q", got)
	}
}

func TestSQLiteChangeTokenSeesOtherProcessWrites(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pp.db")

	a, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open a: %v", err)
	}
	defer a.Close()
	b, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open b: %v", err)
	}
	defer b.Close()

	before := a.ChangeToken()
	b.Set("pp_stars_total", "9")
	if after := a.ChangeToken(); after == before {
		t.Fatalf("token %q did not move after a foreign write", after)
	}
}

func TestWatchFiresOnMutation(t *testing.T) {
	st := NewMemStore()

	fired := make(chan struct{}, 8)
	stop := Watch(st, 5*time.Millisecond, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	defer stop()

	st.Set("pp_stars_total", "1")

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatalf("watch never fired after a write")
	}

	stop()
	stop() // idempotent
}
