package auditlog

import "context"

// Metadata is attached to a command's context so the root command can enrich
// the audit entry it writes after the run.
type Metadata struct {
	Color     string
	PairCount int
}

type metadataKey struct{}

// WithMetadata attaches audit metadata to a context. Zero fields keep any
// value already present.
func WithMetadata(ctx context.Context, meta Metadata) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	existing, _ := ctx.Value(metadataKey{}).(Metadata)
	merged := Metadata{
		Color:     pick(meta.Color, existing.Color),
		PairCount: existing.PairCount,
	}
	if meta.PairCount != 0 {
		merged.PairCount = meta.PairCount
	}
	return context.WithValue(ctx, metadataKey{}, merged)
}

// MetadataFromContext returns audit metadata stored in the context.
func MetadataFromContext(ctx context.Context) Metadata {
	if ctx == nil {
		return Metadata{}
	}
	meta, _ := ctx.Value(metadataKey{}).(Metadata)
	return meta
}

func pick(next, fallback string) string {
	if next != "" {
		return next
	}
	return fallback
}
