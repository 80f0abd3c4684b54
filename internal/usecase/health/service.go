package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates total failure.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	db  DBPinger
	llm LLMChecker
}

// New creates a Service. llm can be nil.
func New(db DBPinger, llm LLMChecker) *Service {
	return &Service{db: db, llm: llm}
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if err := s.db.Ping(ctx); err != nil {
		checks["database"] = CheckError
	} else {
		checks["database"] = CheckOK
	}

	if s.llm != nil {
		if err := s.llm.HealthCheck(ctx); err != nil {
			checks["llm"] = CheckError
		} else {
			checks["llm"] = CheckOK
		}
	}

	return Report{Status: aggregate(checks), Checks: checks}
}

// aggregate derives the overall status. The database is the critical
// dependency; an LLM failure alone only degrades the service.
func aggregate(checks map[string]CheckResult) Status {
	failed := 0
	for _, c := range checks {
		if c == CheckError {
			failed++
		}
	}

	switch {
	case failed == 0:
		return Healthy
	case checks["database"] == CheckError:
		return Unhealthy
	default:
		return Degraded
	}
}
