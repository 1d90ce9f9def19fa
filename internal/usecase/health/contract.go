package health

import "context"

// DBPinger checks index store availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// DecomposerChecker checks language-understanding service availability.
type DecomposerChecker interface {
	HealthCheck(ctx context.Context) error
}
