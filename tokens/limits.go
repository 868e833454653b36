package tokens

// ModelLimits contains context window sizes for common models, used to
// derive a budget threshold when the caller names a model instead of a
// token count.
var ModelLimits = map[string]int{
	"claude-opus-4":     200000,
	"claude-sonnet-4":   200000,
	"claude-3.5-sonnet": 200000,
	"claude-3.5-haiku":  200000,

	"gpt-4o":      128000,
	"gpt-4-turbo": 128000,
	"gpt-4":       8192,

	"default": DefaultThreshold,
}

// ModelLimit returns the context window for a model, or the default
// threshold if the model is unknown.
func ModelLimit(model string) int {
	if limit, ok := ModelLimits[model]; ok {
		return limit
	}
	return ModelLimits["default"]
}
