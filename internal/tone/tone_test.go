package tone

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/abhisek/brainbytes/internal/classify"
)

func newTestWrapper(seed uint64) *Wrapper {
	return NewWrapper(rand.New(rand.NewPCG(seed, seed)))
}

func TestWrap_NeutralIsIdentity(t *testing.T) {
	w := newTestWrapper(1)
	for _, set := range []Set{Generated, Templated} {
		if got := w.Wrap(set, classify.SentimentNeutral, "answer"); got != "answer" {
			t.Errorf("neutral Wrap = %q, want unchanged", got)
		}
	}
}

func TestWrap_ContainsResponseAndUsesSet(t *testing.T) {
	w := newTestWrapper(7)
	sentiments := []classify.Sentiment{
		classify.SentimentExcited, classify.SentimentFrustrated, classify.SentimentConfused,
	}
	for _, set := range []Set{Generated, Templated} {
		for _, s := range sentiments {
			formats, _ := set.formats(s)
			for i := 0; i < 20; i++ {
				got := w.Wrap(set, s, "THE ANSWER")
				if !strings.Contains(got, "THE ANSWER") {
					t.Fatalf("Wrap(%s) = %q lost the response", s, got)
				}
				if !fromFormats(got, formats, "THE ANSWER") {
					t.Fatalf("Wrap(%s) = %q is not one of the set's wrappers", s, got)
				}
			}
		}
	}
}

func TestWrap_SameSeedSameOutput(t *testing.T) {
	a, b := newTestWrapper(42), newTestWrapper(42)
	for i := 0; i < 10; i++ {
		x := a.Wrap(Generated, classify.SentimentConfused, "r")
		y := b.Wrap(Generated, classify.SentimentConfused, "r")
		if x != y {
			t.Fatalf("iteration %d: %q != %q", i, x, y)
		}
	}
}

func TestWrap_CoversAllFormats(t *testing.T) {
	w := newTestWrapper(3)
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		seen[w.Wrap(Templated, classify.SentimentExcited, "r")] = true
	}
	if len(seen) != 4 {
		t.Errorf("saw %d distinct wrappers in 200 draws, want 4", len(seen))
	}
}

func TestSetsDiffer(t *testing.T) {
	if Generated.Confused == Templated.Confused {
		t.Error("generated and templated confusion wrappers should differ")
	}
	if Generated.Frustrated[0] == Templated.Frustrated[0] {
		t.Error("first frustration wrapper should differ between sets")
	}
}

func TestContextPrefix(t *testing.T) {
	tests := []struct {
		name     string
		question string
		prefixed bool
	}{
		{"short", "why is that", true},
		{"four words", "what about the moon", true},
		{"bare pronoun long", "It seems odd that plants need so much light", true},
		{"pronoun word boundary", "Itinerary planning for a trip to the moon", false},
		{"long specific", "how do plants convert light into chemical energy", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContextPrefix("resp", "what is photosynthesis", tt.question)
			want := "resp"
			if tt.prefixed {
				want = `Regarding your question about "what is photosynthesis": resp`
			}
			if got != want {
				t.Errorf("ContextPrefix = %q, want %q", got, want)
			}
		})
	}
}

func fromFormats(got string, formats [4]string, response string) bool {
	for _, f := range formats {
		if strings.Replace(f, "%s", response, 1) == got {
			return true
		}
	}
	return false
}
