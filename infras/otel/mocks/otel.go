package mocks

import (
	"context"

	"campground/infras/otel"
)

type otelImpl struct {
}

// NewScope implements otel.Otel.
func (o *otelImpl) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}

func NewOtel() otel.Otel {
	return &otelImpl{}
}

type recordingOtelImpl struct {
	scope *RecordingScope
}

// NewScope implements otel.Otel.
func (o *recordingOtelImpl) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, o.scope
}

// NewRecordingOtel returns an Otel whose scopes share a single recorder.
func NewRecordingOtel() (otel.Otel, *RecordingScope) {
	scope := &RecordingScope{}

	return &recordingOtelImpl{scope: scope}, scope
}
