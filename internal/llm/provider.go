package llm

import "context"

// Provider is the text generator behind the tutor's remote answers.
type Provider interface {
	// Generate sends one request and returns the generated text. Failures
	// are reported as *ErrHTTPStatus, *ErrInvalidResponse, *ErrRateLimit or
	// *ErrProviderUnavailable.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system prompt. Providers without a system role ignore it.
	System string

	// Messages is the conversation so far. The tutor sends a single user
	// message holding the formatted prompt.
	Messages []Message

	// MaxTokens caps the response length. Zero leaves the provider default.
	MaxTokens int
}

// Prompt returns the content of the last user message, which is what
// single-input providers such as Hugging Face send.
func (r Request) Prompt() string {
	for i := len(r.Messages) - 1; i >= 0; i-- {
		if r.Messages[i].Role == RoleUser {
			return r.Messages[i].Content
		}
	}
	return ""
}

// UserPrompt builds a single-turn request.
func UserPrompt(prompt string) Request {
	return Request{Messages: []Message{{Role: RoleUser, Content: prompt}}}
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Response holds the model's output.
type Response struct {
	Text  string
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// Truncated is set when generation stopped at the token limit.
	Truncated bool
}

// Usage reports token consumption. Providers that do not report usage
// leave it zero.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

type purposeKey struct{}

// WithPurpose labels the calls made with ctx, e.g. "answer". The label is
// stored with each recorded request event.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok && v != "" {
		return v
	}
	return "unknown"
}
