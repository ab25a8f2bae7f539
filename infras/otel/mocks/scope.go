package mocks

import "campground/infras/otel"

type scopeImpl struct {
}

// AddEvent implements otel.Scope.
func (s *scopeImpl) AddEvent(_ string) {

}

// End implements otel.Scope.
func (s *scopeImpl) End() {

}

// SetAttribute implements otel.Scope.
func (s *scopeImpl) SetAttribute(_ string, _ any) {

}

// SetAttributes implements otel.Scope.
func (s *scopeImpl) SetAttributes(_ map[string]any) {

}

// TraceError implements otel.Scope.
func (s *scopeImpl) TraceError(_ error) {

}

// TraceIfError implements otel.Scope.
func (s *scopeImpl) TraceIfError(_ error) {

}

func NewScope() otel.Scope {
	return &scopeImpl{}
}

// RecordingScope collects every error handed to the scope, for tests that
// assert a failure was traced.
type RecordingScope struct {
	Traced []error
}

func (s *RecordingScope) End() {}

func (s *RecordingScope) TraceError(err error) {
	s.Traced = append(s.Traced, err)
}

func (s *RecordingScope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s *RecordingScope) AddEvent(_ string) {}

func (s *RecordingScope) SetAttribute(_ string, _ any) {}

func (s *RecordingScope) SetAttributes(_ map[string]any) {}
