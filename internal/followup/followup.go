// Package followup suggests questions a learner might ask next.
package followup

import (
	"math/rand/v2"
	"sync"

	"github.com/abhisek/brainbytes/internal/classify"
)

const (
	// MaxSuggestions is the most suggestions Generate returns.
	MaxSuggestions = 3

	picksPerList = 2
)

var byType = map[classify.QuestionType][]string{
	classify.TypeDefinition: {
		"Can you give me an example of this?",
		"How is this applied in real life?",
		"What's the origin of this concept?",
		"How does this relate to other similar concepts?",
	},
	classify.TypeExplanation: {
		"Can you explain this in simpler terms?",
		"What are some real-world applications of this?",
		"Are there any exceptions to this explanation?",
		"How has our understanding of this changed over time?",
	},
	classify.TypeExample: {
		"Can you provide a more complex example?",
		"What principles does this example demonstrate?",
		"How would this example change in a different context?",
		"What's a counterexample to this?",
	},
	classify.TypeComparison: {
		"Which one is more commonly used and why?",
		"Are there situations where one is clearly better than the other?",
		"How have these differences evolved over time?",
		"Can you give examples where these differences are significant?",
	},
	classify.TypeProblem: {
		"Can you explain another approach to solve this?",
		"What's a more challenging problem like this?",
		"How would we apply this method to a different problem?",
		"What common mistakes do people make with this kind of problem?",
	},
	classify.TypeApplication: {
		"What are some limitations of this application?",
		"How might this be used in the future?",
		"Can you explain a specific case where this was applied successfully?",
		"What skills are needed to apply this effectively?",
	},
	classify.TypeAnalysis: {
		"What are alternative interpretations?",
		"How does this analysis compare to other perspectives?",
		"What evidence supports this analysis?",
		"What are the implications of this analysis?",
	},
	classify.TypeGeneral: {
		"Can you tell me more about this topic?",
		"How does this relate to current developments in the field?",
		"What's something surprising about this that most people don't know?",
		"What resources would you recommend to learn more about this?",
	},
}

var bySubject = map[classify.Subject][]string{
	classify.SubjectMath: {
		"Can you show me how to solve a more challenging problem like this?",
		"How is this mathematical concept applied in the real world?",
		"What other mathematical concepts are related to this?",
		"What's the history behind this mathematical concept?",
	},
	classify.SubjectScience: {
		"How has our understanding of this scientific concept evolved?",
		"What experiments demonstrated this scientific principle?",
		"How does this relate to other areas of science?",
		"What are the current research frontiers in this area?",
	},
	classify.SubjectHistory: {
		"How did this historical event influence later developments?",
		"What were the perspectives of different groups during this time?",
		"How do historians interpret the significance of this event?",
		"How might things be different if this historical event had not occurred?",
	},
	classify.SubjectGeneral: {
		"Can you explain this from a different perspective?",
		"How does this topic connect to contemporary issues?",
		"What are some common misconceptions about this?",
		"Who are the key figures or experts in this field?",
	},
}

// Candidates returns the full type list followed by the full subject list
// for the classification, after applying the general defaults.
func Candidates(subject classify.Subject, qt classify.QuestionType) []string {
	typeList, subjectList := lists(subject, qt)
	out := make([]string, 0, len(typeList)+len(subjectList))
	out = append(out, typeList...)
	return append(out, subjectList...)
}

func lists(subject classify.Subject, qt classify.QuestionType) ([]string, []string) {
	typeList, ok := byType[qt]
	if !ok {
		typeList = byType[classify.TypeGeneral]
	}
	subjectList, ok := bySubject[subject]
	if !ok {
		subjectList = bySubject[classify.SubjectGeneral]
	}
	return typeList, subjectList
}

// Generator picks follow-up suggestions. It is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator creates a Generator that shuffles with rng.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate takes the first two type suggestions and the first two subject
// suggestions, removes duplicates, shuffles them and returns at most
// MaxSuggestions.
func (g *Generator) Generate(subject classify.Subject, qt classify.QuestionType) []string {
	typeList, subjectList := lists(subject, qt)

	picks := make([]string, 0, 2*picksPerList)
	seen := make(map[string]bool, 2*picksPerList)
	for _, s := range append(head(typeList), head(subjectList)...) {
		if !seen[s] {
			seen[s] = true
			picks = append(picks, s)
		}
	}

	g.mu.Lock()
	g.rng.Shuffle(len(picks), func(i, j int) { picks[i], picks[j] = picks[j], picks[i] })
	g.mu.Unlock()

	if len(picks) > MaxSuggestions {
		picks = picks[:MaxSuggestions]
	}
	return picks
}

func head(list []string) []string {
	if len(list) < picksPerList {
		return list
	}
	return list[:picksPerList]
}
