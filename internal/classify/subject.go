package classify

import (
	"regexp"
	"strings"
)

var (
	operatorPattern = regexp.MustCompile(`[+\-*/=]`)
	digitPattern    = regexp.MustCompile(`\d`)
	mathTermPattern = regexp.MustCompile(`calculate|formula|equation|solve for|find the value|graph of|function`)

	scienceTermPattern = regexp.MustCompile(`molecule|chemical reaction|atom|cell|biology|physics|experiment|theory of|law of|scientific|element|compound`)
	historyTermPattern = regexp.MustCompile(`century|ancient|war|revolution|empire|king|queen|president|civiliz|archaeolog|historical|dynasty|colonial|independence|treaty`)
)

// SubjectRules are the fast-path subject rules, in priority order.
// Questions that match none of them go to keyword voting.
var SubjectRules = []Rule[Subject]{
	{SubjectMath, anyOf(matches(operatorPattern), matches(digitPattern), matches(mathTermPattern))},
	{SubjectScience, matches(scienceTermPattern)},
	{SubjectHistory, matches(historyTermPattern)},
}

type keywordList struct {
	subject  Subject
	keywords []string
}

// subjectKeywords is evaluated in order; that order is the tie-break.
var subjectKeywords = []keywordList{
	{SubjectMath, []string{
		"calculate", "math", "equation", "algebra", "geometry", "calculus", "trigonometry",
		"arithmetic", "number", "formula", "solve", "computation", "theorem", "polynomial",
		"fraction", "decimal", "probability", "statistics", "derivative", "integral",
		"function", "matrix", "vector", "logarithm", "exponent",
	}},
	{SubjectScience, []string{
		"science", "biology", "chemistry", "physics", "experiment", "laboratory", "molecule",
		"element", "atom", "cell", "organism", "ecosystem", "evaporation", "precipitation",
		"water", "chemical", "energy", "force", "reaction", "planet", "solar system", "gravity",
		"dna", "evolution", "genetics", "quantum", "relativity", "electromagnetic", "neuron",
		"climate", "velocity", "acceleration", "momentum", "photosynthesis", "respiration",
	}},
	{SubjectHistory, []string{
		"history", "capital", "war", "president", "century", "ancient", "civilization",
		"revolution", "empire", "kingdom", "philippines", "country", "nation", "battle",
		"treaty", "monarchy", "democracy", "dynasty", "colonization", "independence",
		"world war", "civil war", "expedition", "exploration", "archaeological", "artifact",
		"migration", "settlement", "renaissance", "reformation", "industrial revolution",
		"cold war", "leader", "conquest", "indigenous",
	}},
}

// DetectSubject classifies the topic of question.
func DetectSubject(question string) Subject {
	q := strings.ToLower(question)
	if s, ok := firstMatch(SubjectRules, q); ok {
		return s
	}
	return voteSubject(q)
}

// voteSubject counts keyword hits per subject. A later subject must score
// strictly higher to replace an earlier one.
func voteSubject(q string) Subject {
	best, bestScore := SubjectGeneral, 0
	for _, list := range subjectKeywords {
		score := 0
		for _, kw := range list.keywords {
			if strings.Contains(q, kw) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = list.subject, score
		}
	}
	return best
}
