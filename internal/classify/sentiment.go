package classify

import "strings"

var (
	excitementIndicators = []string{
		"amazing", "wow", "awesome", "great", "excellent", "fantastic",
		"fascinating", "interesting", "cool", "love", "incredible",
		"brilliant", "wonderful", "exciting", "impressive", "thanks",
	}

	frustrationIndicators = []string{
		"not working", "doesn't work", "frustrated", "annoying", "annoyed",
		"stupid", "useless", "waste of time", "terrible", "horrible",
		"awful", "bad", "worst", "ridiculous", "i give up", "not helpful",
		"wrong", "incorrect", "mistake", "error", "not right", "fail",
		"disappointed", "this is not", "that's not what",
	}

	confusionIndicators = []string{
		"confused", "don't understand", "do not understand", "unclear",
		"what do you mean", "makes no sense", "confusing", "lost",
		"clarify", "explain again", "still don't get it", "complex",
		"complicated", "difficult to follow", "help me understand",
		"i'm not sure", "puzzled", "can you explain", "doesn't make sense",
	}
)

// SentimentRules are evaluated in order; excitement beats frustration
// beats confusion.
var SentimentRules = []Rule[Sentiment]{
	{SentimentExcited, containsAny(excitementIndicators...)},
	{SentimentFrustrated, containsAny(frustrationIndicators...)},
	{SentimentConfused, containsAny(confusionIndicators...)},
}

// DetectSentiment classifies the tone of question.
func DetectSentiment(question string) Sentiment {
	return FirstMatch(SentimentRules, strings.ToLower(question), SentimentNeutral)
}
