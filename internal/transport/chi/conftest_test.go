package chi

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/cerebro-kb/cerebro/internal/domain"
	domdoc "github.com/cerebro-kb/cerebro/internal/domain/document"
	"github.com/cerebro-kb/cerebro/internal/domain/querylog"
	"github.com/cerebro-kb/cerebro/internal/domain/rank"
	calendaruc "github.com/cerebro-kb/cerebro/internal/usecase/calendar"
	healthuc "github.com/cerebro-kb/cerebro/internal/usecase/health"
	logsuc "github.com/cerebro-kb/cerebro/internal/usecase/logs"
	queryuc "github.com/cerebro-kb/cerebro/internal/usecase/query"
	searchuc "github.com/cerebro-kb/cerebro/internal/usecase/search"
	statsuc "github.com/cerebro-kb/cerebro/internal/usecase/stats"
)

// --- Mocks ---

// mockDocRepo implements the search repository contract for tests.
type mockDocRepo struct {
	docs     []domdoc.Document
	listErr  error
	getErr   error
	putCalls int
}

func (m *mockDocRepo) List(context.Context) ([]domdoc.Document, error) {
	return m.docs, m.listErr
}

func (m *mockDocRepo) Get(_ context.Context, id string) (domdoc.Document, error) {
	if m.getErr != nil {
		return domdoc.Document{}, m.getErr
	}
	for _, d := range m.docs {
		if d.ID() == id {
			return d, nil
		}
	}
	return domdoc.Document{}, domain.ErrDocumentNotFound
}

func (m *mockDocRepo) PutMulti(_ context.Context, docs []domdoc.Document) error {
	m.putCalls++
	m.docs = append(m.docs, docs...)
	return nil
}

// mockLogRepo implements both the logs repository and the query log writer.
type mockLogRepo struct {
	entries  []querylog.Entry
	listErr  error
	clearErr error
}

func (m *mockLogRepo) Add(_ context.Context, e querylog.Entry) error {
	m.entries = append([]querylog.Entry{e}, m.entries...)
	return nil
}

func (m *mockLogRepo) List(_ context.Context, limit int) ([]querylog.Entry, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	if limit > 0 && limit < len(m.entries) {
		return m.entries[:limit], nil
	}
	return m.entries, nil
}

func (m *mockLogRepo) Clear(context.Context) error { return m.clearErr }

func (m *mockLogRepo) Count(context.Context) (int, error) { return len(m.entries), nil }

type mockDocCounter struct {
	count int
	err   error
}

func (m *mockDocCounter) Count(context.Context) (int, error) { return m.count, m.err }

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(context.Context) error { return m.err }

type mockCalendarProvider struct {
	events []calendaruc.Event
	err    error
}

func (m *mockCalendarProvider) UpcomingEvents(context.Context, int) ([]calendaruc.Event, error) {
	return m.events, m.err
}

// --- Fixtures ---

func testDocs(t *testing.T) []domdoc.Document {
	t.Helper()
	mk := func(id, title, section, content string) domdoc.Document {
		doc, err := domdoc.New(id, title, section, content)
		if err != nil {
			t.Fatalf("create document %s: %v", id, err)
		}
		return doc
	}
	return []domdoc.Document{
		mk("doc_001", "Annual Leave Policy", "HR Policies",
			"All employees are entitled to annual leave.\n• 25 days per year\n• Unused days expire in March"),
		mk("doc_002", "IT Support Guidelines", "IT",
			"Contact the service desk for hardware issues.\nStep 1: Open a ticket."),
	}
}

type testEnv struct {
	docRepo  *mockDocRepo
	logRepo  *mockLogRepo
	pinger   *mockPinger
	provider *mockCalendarProvider
	handler  http.Handler
}

// newTestEnv wires real use case services over mocks behind the HTTP server.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		docRepo:  &mockDocRepo{docs: testDocs(t)},
		logRepo:  &mockLogRepo{},
		pinger:   &mockPinger{},
		provider: &mockCalendarProvider{},
	}

	ranker := rank.NewRanker(rank.NewEmbedder(0))
	searchSvc := searchuc.New(env.docRepo, ranker).WithSamples(testDocs(t))
	querySvc := queryuc.New(searchSvc, nil, env.logRepo)
	logsSvc := logsuc.New(env.logRepo)
	statsSvc := statsuc.New(&mockDocCounter{count: 2}, env.logRepo, nil)
	healthSvc := healthuc.New(env.pinger, nil)
	calendarSvc := calendaruc.New(env.provider, 0)

	server := NewServer(searchSvc, querySvc, logsSvc, statsSvc, healthSvc, calendarSvc, zap.NewNop())

	r := chi.NewRouter()
	server.Register(r)
	env.handler = r
	return env
}
