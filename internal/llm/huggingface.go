package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	defaultHuggingFaceEndpoint = "https://api-inference.huggingface.co/models"
	defaultHuggingFaceModel    = "facebook/bart-large-cnn"

	// maxErrorBody caps how much of a failed response is kept in errors.
	maxErrorBody = 512
)

// huggingFacePayload accepts a non-empty array whose first element
// carries non-empty generated text.
var huggingFacePayload = mustCompilePayloadSchema("huggingface-generation", `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "array",
	"minItems": 1,
	"prefixItems": [{
		"type": "object",
		"required": ["generated_text"],
		"properties": {"generated_text": {"type": "string", "minLength": 1}}
	}]
}`)

type huggingFaceGeneration struct {
	GeneratedText string `json:"generated_text"`
}

// HuggingFaceProvider implements Provider against the Hugging Face
// inference API.
type HuggingFaceProvider struct {
	client   *http.Client
	endpoint string
	model    string
	token    string
}

// NewHuggingFaceProvider creates a provider. An empty token is allowed; the
// request is still sent and the API decides whether to serve it.
func NewHuggingFaceProvider(cfg HuggingFaceConfig) *HuggingFaceProvider {
	endpoint := strings.TrimSuffix(cfg.Endpoint, "/")
	if endpoint == "" {
		endpoint = defaultHuggingFaceEndpoint
	}
	model := cfg.Model
	if model == "" {
		model = defaultHuggingFaceModel
	}
	client := cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	return &HuggingFaceProvider{
		client:   client,
		endpoint: endpoint,
		model:    model,
		token:    cfg.Token,
	}
}

type huggingFaceRequest struct {
	Inputs  string             `json:"inputs"`
	Options huggingFaceOptions `json:"options"`
}

type huggingFaceOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

func (p *HuggingFaceProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	body, err := json.Marshal(huggingFaceRequest{
		Inputs:  req.Prompt(),
		Options: huggingFaceOptions{WaitForModel: false},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.URL(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.token)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, &ErrProviderUnavailable{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ErrProviderUnavailable{Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ErrHTTPStatus{StatusCode: resp.StatusCode, Body: truncateBody(raw)}
	}

	var out []huggingFaceGeneration
	if err := huggingFacePayload.decode(raw, &out); err != nil {
		return nil, err
	}
	return &Response{Text: out[0].GeneratedText, Model: p.model}, nil
}

// URL returns the inference endpoint for the configured model.
func (p *HuggingFaceProvider) URL() string {
	return p.endpoint + "/" + p.model
}

func (p *HuggingFaceProvider) ModelID() string {
	return p.model
}

func truncateBody(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > maxErrorBody {
		return s[:maxErrorBody]
	}
	return s
}
