package appointment

import (
	"context"

	"github.com/claudiaferraz/agenda-api/internal/audit"
)

// Auditor registra a trilha de auditoria sem bloquear a operação.
type Auditor interface {
	Dispatch(ev audit.Event)
}

// CacheInvalidator descarta contadores derivados após cada mutação.
type CacheInvalidator interface {
	Invalidate(ctx context.Context)
}
