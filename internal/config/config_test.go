package config

import "testing"

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 0},
		Database: DatabaseConfig{
			Addrs: []string{"localhost:6379"},
		},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingDatabaseAddrs(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Database: DatabaseConfig{
			Addrs: []string{},
		},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing database addrs")
	}
}

func TestValidate_MinScoreAboveOne(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Database: DatabaseConfig{
			Addrs: []string{"localhost:6379"},
		},
		Search: SearchConfig{MinScore: 1.5},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for min_score above 1")
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Database: DatabaseConfig{
			Addrs: []string{"localhost:6379"},
		},
		Search: SearchConfig{MinScore: 0.3},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("expected WriteTimeoutSec=10, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Database.Driver != "redis" {
		t.Errorf("expected Driver='redis', got %q", cfg.Database.Driver)
	}
	if cfg.Database.ReadinessTimeout != 10 {
		t.Errorf("expected ReadinessTimeout=10, got %d", cfg.Database.ReadinessTimeout)
	}
	if cfg.Search.MinScore != 0.3 {
		t.Errorf("expected MinScore=0.3, got %g", cfg.Search.MinScore)
	}
	if cfg.Search.TopK != 3 {
		t.Errorf("expected TopK=3, got %d", cfg.Search.TopK)
	}
	if cfg.Search.EmbeddingDim != 128 {
		t.Errorf("expected EmbeddingDim=128, got %d", cfg.Search.EmbeddingDim)
	}
	if cfg.Search.MaxLogs != 100 {
		t.Errorf("expected MaxLogs=100, got %d", cfg.Search.MaxLogs)
	}
	if cfg.LLM.Model != "gpt-4o-mini" {
		t.Errorf("expected Model='gpt-4o-mini', got %q", cfg.LLM.Model)
	}
	if cfg.LLM.MaxTokens != 500 {
		t.Errorf("expected MaxTokens=500, got %d", cfg.LLM.MaxTokens)
	}
	if cfg.Calendar.LookaheadDays != 30 {
		t.Errorf("expected LookaheadDays=30, got %d", cfg.Calendar.LookaheadDays)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:     HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Database: DatabaseConfig{Driver: "valkey", ReadinessTimeout: 15},
		Search:   SearchConfig{MinScore: 0.5, TopK: 10, EmbeddingDim: 64, MaxLogs: 20},
		LLM:      LLMConfig{Model: "gpt-4o", MaxTokens: 1000},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.Database.Driver != "valkey" {
		t.Errorf("expected Driver='valkey', got %q", cfg.Database.Driver)
	}
	if cfg.Search.MinScore != 0.5 {
		t.Errorf("expected MinScore=0.5, got %g", cfg.Search.MinScore)
	}
	if cfg.Search.TopK != 10 {
		t.Errorf("expected TopK=10, got %d", cfg.Search.TopK)
	}
	if cfg.LLM.Model != "gpt-4o" {
		t.Errorf("expected Model='gpt-4o', got %q", cfg.LLM.Model)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("CEREBRO_TEST_PORT", "9090")

	in := []byte("port: ${CEREBRO_TEST_PORT}\nmodel: ${CEREBRO_TEST_MODEL:-gpt-4o-mini}\nkey: ${CEREBRO_TEST_UNSET}")
	out := string(expandEnvVars(in))

	want := "port: 9090\nmodel: gpt-4o-mini\nkey: "
	if out != want {
		t.Errorf("unexpected expansion:\ngot:  %q\nwant: %q", out, want)
	}
}
