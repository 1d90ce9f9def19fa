package sdk

import "go.uber.org/zap"

type clientConfig struct {
	addrs    []string
	username string
	password string

	indexName string
	keyPrefix string

	decomposerKey   string
	decomposerURL   string
	decomposerModel string

	logger *zap.Logger
}

func defaultClientConfig() clientConfig {
	return clientConfig{
		indexName:       "totsearch:docs:idx",
		keyPrefix:       "totsearch:doc:",
		decomposerModel: "gpt-5-nano",
		logger:          zap.NewNop(),
	}
}

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

// WithRedis sets the index store addresses and credentials.
// Username and password may be empty.
func WithRedis(addrs []string, username, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.addrs = addrs
		c.username = username
		c.password = password
	})
}

// WithIndex overrides the index name and document key prefix.
func WithIndex(name, keyPrefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.indexName = name
		c.keyPrefix = keyPrefix
	})
}

// WithDecomposer enables facet decomposition. baseURL may be empty for the
// provider default; model may be empty to keep the default model.
func WithDecomposer(apiKey, baseURL, model string) Option {
	return optionFunc(func(c *clientConfig) {
		c.decomposerKey = apiKey
		c.decomposerURL = baseURL
		if model != "" {
			c.decomposerModel = model
		}
	})
}

// WithLogger sets the logger; default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		if logger != nil {
			c.logger = logger
		}
	})
}
