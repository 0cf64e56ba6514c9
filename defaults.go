package claudebridge

const (
	// EnvAPIKey is the environment variable holding the Anthropic API key.
	EnvAPIKey = "ANTHROPIC_API_KEY"
	// DefaultModel is used when the payload does not name a model.
	DefaultModel = "claude-3-5-sonnet-20240620"
	// DefaultSystem is used when the payload does not carry a system instruction.
	DefaultSystem = "You are an annotation assistant returning JSON."
	// MaxOutputTokens caps the size of one model reply.
	MaxOutputTokens = 400
)
