package core

import "context"

// Answerer sends a composed prompt to the generative model and returns its
// free-text reply.
type Answerer interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Extractor converts uploaded file bytes into text for one document format.
type Extractor interface {
	Extract(data []byte) (string, error)
	Type() DocType
}
