package prompt

// TaskKind is the closed set of generation tasks. Every kind carries its own
// instruction block, exemplar count and sampling profile; selection is an
// exhaustive switch so a new kind cannot be added without wiring it here.
type TaskKind string

const (
	TaskPost         TaskKind = "post"
	TaskIdeas        TaskKind = "ideas"
	TaskResearch     TaskKind = "research"
	TaskConversation TaskKind = "conversation"
	TaskRefinement   TaskKind = "refinement"
)

// Profile is the fixed generation configuration of one task kind.
type Profile struct {
	// ExampleCount is how many exemplars the retriever should supply.
	// Zero means the kind does not retrieve.
	ExampleCount int
	Temperature  float64
	MaxTokens    int
}

// ProfileFor returns the generation profile of a kind. Unknown kinds get the
// conversation profile, mirroring the persona-only fallback of the templates.
func ProfileFor(kind TaskKind) Profile {
	switch kind {
	case TaskPost:
		return Profile{ExampleCount: 4, Temperature: 0.8, MaxTokens: 1000}
	case TaskIdeas:
		return Profile{ExampleCount: 6, Temperature: 0.9, MaxTokens: 1200}
	case TaskResearch:
		return Profile{ExampleCount: 4, Temperature: 0.7, MaxTokens: 1500}
	case TaskRefinement:
		return Profile{ExampleCount: 0, Temperature: 0.8, MaxTokens: 1200}
	case TaskConversation:
		return Profile{ExampleCount: 0, Temperature: 0.9, MaxTokens: 800}
	default:
		return Profile{ExampleCount: 0, Temperature: 0.9, MaxTokens: 800}
	}
}
