package health

import "context"

// DBPinger checks database connectivity.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// LLMChecker verifies the language model provider is reachable.
type LLMChecker interface {
	HealthCheck(ctx context.Context) error
}
