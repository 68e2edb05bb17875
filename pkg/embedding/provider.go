package embedding

import "context"

// Provider turns texts into fixed-dimension vectors. Implementations must be
// deterministic for a given model version; one Index is always built and
// queried through the same Provider instance so vectors stay comparable.
type Provider interface {
	// EmbedBatch returns one vector per input text, in input order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// ServiceError wraps a failed embedding call. During index build it is fatal;
// at query time it surfaces to the caller as a retrieval failure.
type ServiceError struct {
	Err error
}

func (e *ServiceError) Error() string {
	return "embedding service: " + e.Err.Error()
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
