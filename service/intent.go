package service

import "strings"

// Intent is the routing decision for an incoming question.
type Intent int

const (
	IntentAnswer Intent = iota
	IntentImage
)

// imageKeywords only match explicit generation requests. The set is
// deliberately narrow: a question that merely mentions "diagram" as a
// topic must still route to the answer path, so missed requests are
// preferred over misrouted content questions.
var imageKeywords = []string{
	"draw",
	"generate image",
	"create diagram",
	"create flowchart",
	"show diagram",
	"make flowchart",
}

// ClassifyIntent routes a question by case-insensitive substring match
// against the keyword set. Any match wins; there is no priority among
// keywords.
func ClassifyIntent(question string) Intent {
	lower := strings.ToLower(question)
	for _, keyword := range imageKeywords {
		if strings.Contains(lower, keyword) {
			return IntentImage
		}
	}
	return IntentAnswer
}
