package fallback

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/abhisek/brainbytes/internal/classify"
	"github.com/abhisek/brainbytes/internal/tone"
)

func newTestResponder() *Responder {
	return NewResponder(tone.NewWrapper(rand.New(rand.NewPCG(1, 2))))
}

func TestTemplate_BankIsComplete(t *testing.T) {
	for _, s := range classify.Subjects {
		for _, qt := range classify.QuestionTypes {
			got := Template(s, qt)
			if got == "" || got == DefaultResponse {
				t.Errorf("Template(%s, %s) missing", s, qt)
			}
		}
	}
}

func TestTemplate_Fallbacks(t *testing.T) {
	if got, want := Template("art", classify.TypeExample), Template(classify.SubjectGeneral, classify.TypeExample); got != want {
		t.Errorf("unknown subject should use general: got %q", got)
	}
	if got := Template(classify.SubjectMath, "riddle"); got != DefaultResponse {
		t.Errorf("unknown type should yield default, got %q", got)
	}
}

func TestRespond_ScienceDefinition(t *testing.T) {
	r := newTestResponder()
	c := classify.Classify("what is quantum entanglement")
	if c.Subject != classify.SubjectScience || c.Type != classify.TypeDefinition {
		t.Fatalf("unexpected classification %+v", c)
	}

	got := r.Respond("what is quantum entanglement", c, "")
	if got != Template(classify.SubjectScience, classify.TypeDefinition) {
		t.Errorf("Respond = %q, want the science/definition template", got)
	}
}

func TestRespond_DirectAnswerWins(t *testing.T) {
	r := newTestResponder()
	c := classify.Result{Subject: classify.SubjectMath, Type: classify.TypeDefinition, Sentiment: classify.SentimentExcited}

	got := r.Respond("What is 1+1", c, "earlier")
	if !strings.HasPrefix(got, "The answer to 1+1 is 2.") {
		t.Errorf("Respond = %q, want the canned answer unwrapped", got)
	}
}

func TestRespond_ContextPrefix(t *testing.T) {
	r := newTestResponder()
	c := classify.Result{Subject: classify.SubjectHistory, Type: classify.TypeGeneral, Sentiment: classify.SentimentNeutral}

	got := r.Respond("and then?", c, "who was napoleon")
	want := "Based on our discussion about who was napoleon, " + Template(classify.SubjectHistory, classify.TypeGeneral)
	if got != want {
		t.Errorf("Respond = %q, want %q", got, want)
	}
}

func TestRespond_SentimentWrapped(t *testing.T) {
	r := newTestResponder()
	c := classify.Result{Subject: classify.SubjectMath, Type: classify.TypeProblem, Sentiment: classify.SentimentFrustrated}

	base := Template(classify.SubjectMath, classify.TypeProblem)
	got := r.Respond("solve this stupid thing", c, "")
	if got == base {
		t.Fatal("frustrated answer should be wrapped")
	}
	if !strings.Contains(got, base) {
		t.Errorf("wrapped answer lost the template: %q", got)
	}
}
