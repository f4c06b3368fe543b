package llm

import (
	"errors"
	"testing"
)

func TestHuggingFacePayload(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"single generation", `[{"generated_text":"An atom is tiny."}]`, "An atom is tiny.", false},
		{"extra fields and items", `[{"generated_text":"a","score":0.9},{"other":1}]`, "a", false},
		{"empty array", `[]`, "", true},
		{"object instead of array", `{"generated_text":"a"}`, "", true},
		{"missing field", `[{"summary_text":"a"}]`, "", true},
		{"wrong type", `[{"generated_text":42}]`, "", true},
		{"empty text", `[{"generated_text":""}]`, "", true},
		{"loading error body", `{"error":"Model is currently loading","estimated_time":20}`, "", true},
		{"malformed JSON", `[{not json}]`, "", true},
		{"trailing garbage", `[{"generated_text":"a"}] x`, "", true},
		{"empty body", ``, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out []huggingFaceGeneration
			err := huggingFacePayload.decode([]byte(tt.raw), &out)
			if (err != nil) != tt.wantErr {
				t.Fatalf("decode(%s) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if err != nil {
				var invErr *ErrInvalidResponse
				if !errors.As(err, &invErr) {
					t.Fatalf("expected ErrInvalidResponse, got: %T", err)
				}
				if invErr.Content != tt.raw {
					t.Errorf("Content = %q, want %q", invErr.Content, tt.raw)
				}
				return
			}
			if out[0].GeneratedText != tt.want {
				t.Errorf("text = %q, want %q", out[0].GeneratedText, tt.want)
			}
		})
	}
}

func TestCompilePayloadSchema_Invalid(t *testing.T) {
	if _, err := compilePayloadSchema("bad-type", `{"type": 12}`); err == nil {
		t.Error("expected compile error for invalid schema")
	}
	if _, err := compilePayloadSchema("not-json", `{`); err == nil {
		t.Error("expected parse error")
	}
}
