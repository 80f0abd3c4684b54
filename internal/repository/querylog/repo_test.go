package querylog

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	domlog "github.com/cerebro-kb/cerebro/internal/domain/querylog"
)

// --- Mocks ---

// mockStore implements the consumer interface for tests.
type mockStore struct {
	lpushFn  func(ctx context.Context, key string, values ...string) error
	lrangeFn func(ctx context.Context, key string, start, stop int64) ([]string, error)
	llenFn   func(ctx context.Context, key string) (int64, error)
	delFn    func(ctx context.Context, key string) error
}

func (m *mockStore) LPush(ctx context.Context, key string, values ...string) error {
	if m.lpushFn != nil {
		return m.lpushFn(ctx, key, values...)
	}
	return nil
}

func (m *mockStore) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	if m.lrangeFn != nil {
		return m.lrangeFn(ctx, key, start, stop)
	}
	return nil, nil
}

func (m *mockStore) LLen(ctx context.Context, key string) (int64, error) {
	if m.llenFn != nil {
		return m.llenFn(ctx, key)
	}
	return 0, nil
}

func (m *mockStore) Del(ctx context.Context, key string) error {
	if m.delFn != nil {
		return m.delFn(ctx, key)
	}
	return nil
}

func storedEntry(t *testing.T, id, query string, answered bool) string {
	t.Helper()
	data, err := json.Marshal(entryDTO{
		ID:        id,
		Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Query:     query,
		Answered:  answered,
		Sources:   []domlog.Source{{Title: "Annual Leave Policy", Section: "HR Policies"}},
	})
	if err != nil {
		t.Fatalf("marshal entry: %v", err)
	}
	return string(data)
}

// --- Tests ---

func TestAdd_PushesJSON(t *testing.T) {
	var gotKey string
	var gotValues []string
	ms := &mockStore{
		lpushFn: func(_ context.Context, key string, values ...string) error {
			gotKey = key
			gotValues = values
			return nil
		},
	}
	repo := New(ms)

	entry := domlog.New("how many leave days", true, []domlog.Source{
		{Title: "Annual Leave Policy", Section: "HR Policies"},
	})

	if err := repo.Add(context.Background(), entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotKey != "cerebro:logs" {
		t.Errorf("unexpected key %q", gotKey)
	}
	if len(gotValues) != 1 {
		t.Fatalf("expected 1 value, got %d", len(gotValues))
	}

	var dto entryDTO
	if err := json.Unmarshal([]byte(gotValues[0]), &dto); err != nil {
		t.Fatalf("stored value is not JSON: %v", err)
	}
	if dto.Query != "how many leave days" || !dto.Answered {
		t.Errorf("unexpected stored entry %+v", dto)
	}
	if dto.ID != entry.ID() {
		t.Errorf("expected id %q, got %q", entry.ID(), dto.ID)
	}
}

func TestAdd_StoreError(t *testing.T) {
	ms := &mockStore{
		lpushFn: func(context.Context, string, ...string) error {
			return errors.New("OOM")
		},
	}
	repo := New(ms)

	if err := repo.Add(context.Background(), domlog.New("q", false, nil)); err == nil {
		t.Fatal("expected error on LPUSH failure")
	}
}

func TestList_AppliesLimit(t *testing.T) {
	var gotStart, gotStop int64
	ms := &mockStore{
		lrangeFn: func(_ context.Context, _ string, start, stop int64) ([]string, error) {
			gotStart, gotStop = start, stop
			return nil, nil
		},
	}
	repo := New(ms)

	if _, err := repo.List(context.Background(), 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotStart != 0 || gotStop != 9 {
		t.Errorf("expected range [0,9], got [%d,%d]", gotStart, gotStop)
	}
}

func TestList_NoLimitReturnsAll(t *testing.T) {
	var gotStop int64
	ms := &mockStore{
		lrangeFn: func(_ context.Context, _ string, _, stop int64) ([]string, error) {
			gotStop = stop
			return nil, nil
		},
	}
	repo := New(ms)

	if _, err := repo.List(context.Background(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotStop != -1 {
		t.Errorf("expected stop -1, got %d", gotStop)
	}
}

func TestList_DecodesEntries(t *testing.T) {
	ms := &mockStore{
		lrangeFn: func(context.Context, string, int64, int64) ([]string, error) {
			return []string{
				storedEntry(t, "id2", "remote work", false),
				storedEntry(t, "id1", "annual leave", true),
			}, nil
		},
	}
	repo := New(ms)

	entries, err := repo.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID() != "id2" || entries[0].Query() != "remote work" {
		t.Errorf("unexpected first entry %v", entries[0])
	}
	if !entries[1].Answered() {
		t.Error("expected second entry answered")
	}
	if len(entries[1].Sources()) != 1 || entries[1].Sources()[0].Title != "Annual Leave Policy" {
		t.Errorf("unexpected sources %v", entries[1].Sources())
	}
}

func TestList_SkipsCorruptEntries(t *testing.T) {
	ms := &mockStore{
		lrangeFn: func(context.Context, string, int64, int64) ([]string, error) {
			return []string{"{not json", storedEntry(t, "id1", "annual leave", true)}, nil
		},
	}
	repo := New(ms)

	entries, err := repo.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].ID() != "id1" {
		t.Errorf("expected only the valid entry, got %v", entries)
	}
}

func TestCount(t *testing.T) {
	ms := &mockStore{
		llenFn: func(_ context.Context, key string) (int64, error) {
			if key != "cerebro:logs" {
				t.Errorf("unexpected key %q", key)
			}
			return 42, nil
		},
	}
	repo := New(ms)

	n, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 42 {
		t.Errorf("expected 42, got %d", n)
	}
}

func TestClear(t *testing.T) {
	var gotKey string
	ms := &mockStore{
		delFn: func(_ context.Context, key string) error {
			gotKey = key
			return nil
		},
	}
	repo := New(ms)

	if err := repo.Clear(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotKey != "cerebro:logs" {
		t.Errorf("unexpected key %q", gotKey)
	}
}
