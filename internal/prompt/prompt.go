// Package prompt builds the instruction text sent to the answer generator.
package prompt

import (
	"fmt"

	"github.com/abhisek/brainbytes/internal/classify"
)

var typeInstructions = map[classify.QuestionType]string{
	classify.TypeDefinition:  "Define the following term in comprehensive detail: ",
	classify.TypeExplanation: "Explain thoroughly how this works with clear steps: ",
	classify.TypeExample:     "Provide several specific, varied, and illuminating examples for: ",
	classify.TypeComparison:  "Compare and contrast in thorough detail, addressing similarities, differences, and applications: ",
	classify.TypeProblem:     "Solve this problem step-by-step with clear explanations for each step: ",
	classify.TypeApplication: "Explain practical applications and real-world relevance of: ",
	classify.TypeAnalysis:    "Provide a detailed analysis with multiple perspectives on: ",
}

var subjectInstructions = map[classify.Subject]string{
	classify.SubjectMath:    "Provide a precise mathematical explanation with appropriate formulas, definitions, and principles. If applicable, include step-by-step solutions and visual representations.",
	classify.SubjectScience: "Answer with scientific accuracy, referencing relevant theories, experimental evidence, and current scientific understanding. Include appropriate scientific terminology and relationships between concepts.",
	classify.SubjectHistory: "Include relevant historical context, timeline of events, key figures, causes and effects, and different historical perspectives. Address the significance and lasting impact where appropriate.",
}

// Format builds the generator prompt for question. previous is the user's
// last question when this one is a follow-up, or "" otherwise.
func Format(question string, subject classify.Subject, qt classify.QuestionType, previous string) string {
	p := question
	if previous != "" {
		p = fmt.Sprintf("Previous question: \"%s\" \nCurrent question: \"%s\"\n"+
			"Provide a detailed response to the current question in the context of the previous question.",
			previous, question)
	}

	if instr, ok := typeInstructions[qt]; ok {
		p = instr + p
	}

	if instr, ok := subjectInstructions[subject]; ok {
		p = p + ". " + instr
	}
	return p
}
