package app

import (
	"context"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/agbru/fibs/internal/app"

// startSpan opens a span for one operation on kind. Spans go to the global
// tracer provider, which is a no-op unless the embedding program installs an
// SDK.
func startSpan(ctx context.Context, operation, kind string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs, attribute.String("fibs.type", kind))
	return otel.Tracer(tracerName).Start(ctx, "fibs."+operation, trace.WithAttributes(attrs...))
}

func indexAttr(key string, n uint64) attribute.KeyValue {
	return attribute.String(key, strconv.FormatUint(n, 10))
}

// endSpan records err on span and ends it.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
