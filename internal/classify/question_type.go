package classify

import (
	"regexp"
	"strings"
)

var (
	meaningPattern    = regexp.MustCompile(`what (does|do) .* mean`)
	findWhenPattern   = regexp.MustCompile(`find ([a-z]+) when`)
	arithmeticPattern = regexp.MustCompile(`what is \d+\s*[+\-*/]\s*\d+`)
)

// TypeRules are evaluated in order; the first match wins.
var TypeRules = []Rule[QuestionType]{
	{TypeDefinition, anyOf(
		hasPrefix("what is", "define", "what are"),
		containsAny("meaning of", "definition of", "describe what"),
		matches(meaningPattern),
	)},
	{TypeExplanation, anyOf(
		hasPrefix("how does", "how do", "why does", "why do", "explain"),
		containsAny("how come", "reason for", "reasons why", "elaborate on", "clarify why", "help me understand"),
	)},
	{TypeExample, anyOf(
		containsAny("example", "instance", "illustration"),
		hasPrefix("show me"),
		containsAny("such as", "give me a case of", "demonstrate", "provide a sample"),
	)},
	{TypeComparison, anyOf(
		containsAny("difference between", "compare", "versus", " vs ", "contrast",
			"distinguish", "similarities", "differences"),
		containsAll("how does", "differ from"),
	)},
	{TypeProblem, anyOf(
		containsAny("solve", "calculate", "find the value", "compute", "determine the"),
		matches(findWhenPattern),
		containsAny("evaluate", "simplify", "work out"),
		matches(arithmeticPattern),
	)},
	{TypeApplication, containsAny(
		"how can i use", "application of", "real-world example", "practical use",
		"how is this used", "relevance of", "importance of",
	)},
	{TypeAnalysis, containsAny(
		"analyze", "examine", "interpret", "implications of", "consequences of",
		"discuss the", "critical analysis",
	)},
}

// DetectQuestionType classifies the intent of question.
func DetectQuestionType(question string) QuestionType {
	return FirstMatch(TypeRules, strings.ToLower(question), TypeGeneral)
}
