package provider

// Chat roles understood by OpenAI-compatible endpoints.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of a conversation.
type ChatMessage struct {
	Role    string
	Content string
}

// ChatOptions tune a single completion request.
type ChatOptions struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// ChatResult is the structured reply from a chat completion provider.
type ChatResult struct {
	Reply            string
	Model            string
	PromptTokens     int
	CompletionTokens int
}
