package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestHuggingFaceProvider(t *testing.T, token string, handler http.HandlerFunc) *HuggingFaceProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewHuggingFaceProvider(HuggingFaceConfig{
		Token:    token,
		Endpoint: server.URL + "/models/",
		Model:    "facebook/bart-large-cnn",
	})
}

func TestHuggingFaceProvider_HappyPath(t *testing.T) {
	var (
		gotPath string
		gotAuth string
		gotType string
		gotBody map[string]any
	)
	handler := func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"generated_text":"Photosynthesis is how plants make food."}]`))
	}

	p := newTestHuggingFaceProvider(t, "hf_test", handler)
	resp, err := p.Generate(context.Background(), UserPrompt("what is photosynthesis"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Text != "Photosynthesis is how plants make food." {
		t.Errorf("text = %q", resp.Text)
	}
	if resp.Model != "facebook/bart-large-cnn" {
		t.Errorf("model = %q", resp.Model)
	}
	if gotPath != "/models/facebook/bart-large-cnn" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAuth != "Bearer hf_test" {
		t.Errorf("authorization = %q", gotAuth)
	}
	if gotType != "application/json" {
		t.Errorf("content type = %q", gotType)
	}
	if gotBody["inputs"] != "what is photosynthesis" {
		t.Errorf("inputs = %v", gotBody["inputs"])
	}
	opts, _ := gotBody["options"].(map[string]any)
	if opts["wait_for_model"] != false {
		t.Errorf("options = %v", gotBody["options"])
	}
}

func TestHuggingFaceProvider_MissingTokenStillCalls(t *testing.T) {
	called := false
	handler := func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusUnauthorized)
	}

	p := newTestHuggingFaceProvider(t, "", handler)
	_, err := p.Generate(context.Background(), UserPrompt("hi"))
	if !called {
		t.Fatal("expected the request to be sent")
	}
	var se *ErrHTTPStatus
	if !errors.As(err, &se) || se.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected ErrHTTPStatus 401, got: %T (%v)", err, err)
	}
}

func TestHuggingFaceProvider_HTTPStatus(t *testing.T) {
	for _, status := range []int{http.StatusTooManyRequests, http.StatusServiceUnavailable, http.StatusBadRequest} {
		handler := func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(`{"error":"Model facebook/bart-large-cnn is currently loading"}`))
		}

		p := newTestHuggingFaceProvider(t, "hf_test", handler)
		_, err := p.Generate(context.Background(), UserPrompt("hi"))

		var se *ErrHTTPStatus
		if !errors.As(err, &se) {
			t.Fatalf("status %d: expected ErrHTTPStatus, got: %T (%v)", status, err, err)
		}
		if se.StatusCode != status {
			t.Errorf("status = %d, want %d", se.StatusCode, status)
		}
		if se.Body == "" {
			t.Errorf("status %d: expected body in error", status)
		}
	}
}

func TestHuggingFaceProvider_BadPayload(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"summary_text":"not what we asked for"}]`))
	}

	p := newTestHuggingFaceProvider(t, "hf_test", handler)
	_, err := p.Generate(context.Background(), UserPrompt("hi"))

	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
	}
}

func TestHuggingFaceProvider_Timeout(t *testing.T) {
	release := make(chan struct{})
	handler := func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}
	p := newTestHuggingFaceProvider(t, "hf_test", handler)
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := p.Generate(ctx, UserPrompt("hi"))
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T (%v)", err, err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got: %v", err)
	}
}

func TestHuggingFaceProvider_Defaults(t *testing.T) {
	p := NewHuggingFaceProvider(HuggingFaceConfig{})
	want := "https://api-inference.huggingface.co/models/facebook/bart-large-cnn"
	if p.URL() != want {
		t.Errorf("URL() = %q, want %q", p.URL(), want)
	}
	if p.ModelID() != "facebook/bart-large-cnn" {
		t.Errorf("ModelID() = %q", p.ModelID())
	}
}
