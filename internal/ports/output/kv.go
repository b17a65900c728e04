package output

import "context"

// KeyValue is the session-scoped persistence slot used for language
// preferences and compose drafts. Implementations return
// domain.ErrKeyNotFound for absent keys; callers treat every other failure
// as absence too (best-effort semantics).
type KeyValue interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
