package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/poststates/internal/statelabel"
)

// WrapLookup decorates a lookup function with a span per option read.
// With a no-op tracer the overhead is negligible, so callers can wrap
// unconditionally.
func WrapLookup(tracer trace.Tracer, next statelabel.LookupFunc) statelabel.LookupFunc {
	return func(ctx context.Context, key string) (string, error) {
		ctx, span := tracer.Start(ctx, "option.lookup",
			trace.WithAttributes(attribute.String("option.key", key)))
		defer span.End()

		value, err := next(ctx, key)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
		}
		return value, err
	}
}
