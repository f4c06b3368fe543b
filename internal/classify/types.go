package classify

// Subject is the coarse topic of a question.
type Subject string

const (
	SubjectMath    Subject = "math"
	SubjectScience Subject = "science"
	SubjectHistory Subject = "history"
	SubjectGeneral Subject = "general"
)

// Subjects lists every subject label, general last.
var Subjects = []Subject{SubjectMath, SubjectScience, SubjectHistory, SubjectGeneral}

// Valid reports whether s is one of the known subjects.
func (s Subject) Valid() bool {
	for _, known := range Subjects {
		if s == known {
			return true
		}
	}
	return false
}

// QuestionType is the rhetorical intent of a question.
type QuestionType string

const (
	TypeDefinition  QuestionType = "definition"
	TypeExplanation QuestionType = "explanation"
	TypeExample     QuestionType = "example"
	TypeComparison  QuestionType = "comparison"
	TypeProblem     QuestionType = "problem"
	TypeApplication QuestionType = "application"
	TypeAnalysis    QuestionType = "analysis"
	TypeGeneral     QuestionType = "general"
)

// QuestionTypes lists every question type label, general last.
var QuestionTypes = []QuestionType{
	TypeDefinition, TypeExplanation, TypeExample, TypeComparison,
	TypeProblem, TypeApplication, TypeAnalysis, TypeGeneral,
}

// Sentiment is the emotional tone of the asker's phrasing.
type Sentiment string

const (
	SentimentExcited    Sentiment = "excited"
	SentimentFrustrated Sentiment = "frustrated"
	SentimentConfused   Sentiment = "confused"
	SentimentNeutral    Sentiment = "neutral"
)

// Result holds one label per axis. Every question produces a Result.
type Result struct {
	Subject   Subject
	Type      QuestionType
	Sentiment Sentiment
}
