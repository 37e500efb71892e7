package chat

import "context"

// UseCase answers a natural-language question: parse, route, render.
type UseCase interface {
	Ask(ctx context.Context, input AskInput) (AskOutput, error)
}
