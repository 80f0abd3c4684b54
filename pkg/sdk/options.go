package cerebro

import "log/slog"

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	addrs    []string
	password string

	minScore     float64
	topK         int
	embeddingDim int
	noSamples    bool

	logger *slog.Logger
}

// WithRedis configures the client to connect to a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithMinScore sets the minimum combined score a document needs to be
// returned. Default: 0.3.
func WithMinScore(min float64) Option {
	return optionFunc(func(c *clientConfig) {
		c.minScore = min
	})
}

// WithTopK sets the maximum number of search results. Default: 3.
func WithTopK(k int) Option {
	return optionFunc(func(c *clientConfig) {
		c.topK = k
	})
}

// WithEmbeddingDimensions sets the embedding vector width. Default: 128.
func WithEmbeddingDimensions(dim int) Option {
	return optionFunc(func(c *clientConfig) {
		c.embeddingDim = dim
	})
}

// WithoutSamples disables seeding of the sample policy documents into an
// empty knowledge base.
func WithoutSamples() Option {
	return optionFunc(func(c *clientConfig) {
		c.noSamples = true
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}
