package client

// Source identifies where a result came from.
type Source string

const (
	// SourceLive means the remote service answered the call.
	SourceLive Source = "live"
	// SourceFallback means the call was served by the in-process
	// fallback store after the remote call failed.
	SourceFallback Source = "fallback"
)

// Result pairs a value with the source that produced it, so callers can
// tell real data from substituted demo data.
type Result[T any] struct {
	Value  T
	Source Source
}

func live[T any](v T) Result[T] {
	return Result[T]{Value: v, Source: SourceLive}
}

func fallback[T any](v T) Result[T] {
	return Result[T]{Value: v, Source: SourceFallback}
}
