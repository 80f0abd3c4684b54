package chi

import (
	"time"

	domdoc "github.com/cerebro-kb/cerebro/internal/domain/document"
	"github.com/cerebro-kb/cerebro/internal/domain/querylog"
	"github.com/cerebro-kb/cerebro/internal/domain/rank"
	healthuc "github.com/cerebro-kb/cerebro/internal/usecase/health"
	queryuc "github.com/cerebro-kb/cerebro/internal/usecase/query"
	statsuc "github.com/cerebro-kb/cerebro/internal/usecase/stats"
)

type searchRequest struct {
	Query string `json:"query"`
}

type queryRequest struct {
	Query  string `json:"query"`
	UseLLM *bool  `json:"use_llm"`
}

type documentDTO struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Section string `json:"section"`
	Content string `json:"content"`
}

type documentListDTO struct {
	Documents []documentDTO `json:"documents"`
	Total     int           `json:"total"`
}

type scoredDocumentDTO struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Section        string  `json:"section"`
	Content        string  `json:"content"`
	Score          float64 `json:"score"`
	KeywordScore   float64 `json:"keyword_score"`
	EmbeddingScore float64 `json:"embedding_score"`
	Relevance      string  `json:"relevance"`
}

type searchResponse struct {
	Query   string              `json:"query"`
	Results []scoredDocumentDTO `json:"results"`
	Total   int                 `json:"total"`
}

type queryResponse struct {
	Query      string            `json:"query"`
	Answer     string            `json:"answer"`
	Sources    []querylog.Source `json:"sources"`
	Timestamp  time.Time         `json:"timestamp"`
	LLMEnabled bool              `json:"llm_enabled"`
}

type logEntryDTO struct {
	ID        string            `json:"id"`
	Timestamp time.Time         `json:"timestamp"`
	Query     string            `json:"query"`
	Answered  bool              `json:"answered"`
	Sources   []querylog.Source `json:"sources"`
}

type logListDTO struct {
	Logs  []logEntryDTO `json:"logs"`
	Total int           `json:"total"`
}

type statsDTO struct {
	TotalDocuments  int                 `json:"total_documents"`
	TotalQueries    int                 `json:"total_queries"`
	AnsweredQueries int                 `json:"answered_queries"`
	ResponseRate    string              `json:"response_rate"`
	TopSources      []statsuc.NameCount `json:"top_sources"`
	TopQueries      []statsuc.NameCount `json:"top_queries"`
	FirstQuery      *time.Time          `json:"first_query,omitempty"`
	LastQuery       *time.Time          `json:"last_query,omitempty"`
	VectorStore     vectorStoreDTO      `json:"vector_store"`
}

type vectorStoreDTO struct {
	Available bool `json:"available"`
	Size      int  `json:"size"`
}

type healthDTO struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func documentToDTO(d domdoc.Document) documentDTO {
	return documentDTO{
		ID:      d.ID(),
		Title:   d.Title(),
		Section: d.Section(),
		Content: d.Content(),
	}
}

func scoredDocumentToDTO(r rank.ScoredDocument) scoredDocumentDTO {
	return scoredDocumentDTO{
		ID:             r.Document.ID(),
		Title:          r.Document.Title(),
		Section:        r.Document.Section(),
		Content:        r.Document.Content(),
		Score:          r.Score,
		KeywordScore:   r.KeywordScore,
		EmbeddingScore: r.EmbeddingScore,
		Relevance:      r.Relevance,
	}
}

func queryToDTO(r queryuc.Response) queryResponse {
	sources := r.Sources
	if sources == nil {
		sources = []querylog.Source{}
	}
	return queryResponse{
		Query:      r.Query,
		Answer:     r.Answer,
		Sources:    sources,
		Timestamp:  r.Timestamp,
		LLMEnabled: r.LLMEnabled,
	}
}

func logEntryToDTO(e querylog.Entry) logEntryDTO {
	return logEntryDTO{
		ID:        e.ID(),
		Timestamp: e.Timestamp(),
		Query:     e.Query(),
		Answered:  e.Answered(),
		Sources:   e.Sources(),
	}
}

func statsToDTO(r statsuc.Report) statsDTO {
	return statsDTO{
		TotalDocuments:  r.TotalDocuments,
		TotalQueries:    r.TotalQueries,
		AnsweredQueries: r.AnsweredQueries,
		ResponseRate:    r.ResponseRate,
		TopSources:      r.TopSources,
		TopQueries:      r.TopQueries,
		FirstQuery:      r.FirstQuery,
		LastQuery:       r.LastQuery,
		VectorStore: vectorStoreDTO{
			Available: r.VectorStoreOK,
			Size:      r.VectorStoreSize,
		},
	}
}

func healthToDTO(r healthuc.Report) healthDTO {
	checks := make(map[string]string, len(r.Checks))
	for k, v := range r.Checks {
		checks[k] = string(v)
	}
	return healthDTO{
		Status: string(r.Status),
		Checks: checks,
	}
}
