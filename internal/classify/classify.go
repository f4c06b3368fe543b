// Package classify labels tutoring questions by subject, question type and
// sentiment using ordered keyword and pattern cascades.
package classify

// Classify runs all three detectors on question.
func Classify(question string) Result {
	return Result{
		Subject:   DetectSubject(question),
		Type:      DetectQuestionType(question),
		Sentiment: DetectSentiment(question),
	}
}
