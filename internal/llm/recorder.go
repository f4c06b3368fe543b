package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/abhisek/brainbytes/internal/store"
)

type recordedProvider struct {
	Provider
	name   string
	events store.EventRepo
}

// Recorded wraps p so that every Generate call, failed or not, is appended
// to events as an LLM request event. name is the configured provider name.
func Recorded(p Provider, name string, events store.EventRepo) Provider {
	return &recordedProvider{Provider: p, name: name, events: events}
}

func (r *recordedProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	started := time.Now()
	resp, err := r.Provider.Generate(ctx, req)
	elapsed := time.Since(started)

	ev := store.LLMRequestEventData{
		Provider:    r.name,
		Model:       r.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   elapsed.Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(req),
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
	}
	if resp != nil {
		if resp.Model != "" {
			ev.Model = resp.Model
		}
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.ResponseBody = resp.Text
	}

	fields := log.Fields{
		"provider": ev.Provider,
		"model":    ev.Model,
		"purpose":  ev.Purpose,
		"latency":  elapsed,
	}
	if c := LookupCost(ev.Model); c != nil && resp != nil {
		fields["cost_usd"] = c.Cost(ev.InputTokens, ev.OutputTokens)
	}
	log.WithFields(fields).WithError(err).Debug("llm request")

	// The caller's deadline may already have passed.
	if recErr := r.events.AppendLLMRequest(context.WithoutCancel(ctx), ev); recErr != nil {
		log.WithError(recErr).Warn("could not record LLM request event")
	}
	return resp, err
}

// transcript renders req as "role: content" lines for the event log.
func transcript(req Request) string {
	var b strings.Builder
	if req.System != "" {
		fmt.Fprintf(&b, "system: %s\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "%s: %s\n", m.Role, m.Content)
	}
	return b.String()
}
