package qwen

import "context"

// IQwen is a Qwen chat client on DashScope's OpenAI-compatible endpoint.
// Implementations are safe for concurrent use.
type IQwen interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New creates a new Qwen client with the given configuration
func New(cfg Config) (IQwen, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newQwenImpl(cfg), nil
}
