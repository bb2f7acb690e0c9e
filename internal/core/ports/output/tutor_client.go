package output

import "context"

// TutorClient talks to the LLM gateway that answers student questions.
type TutorClient interface {
	// IsAvailable reports whether the gateway is configured and reachable.
	IsAvailable() bool

	// Complete sends a prompt under the given system instruction and returns
	// the model's text reply.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
