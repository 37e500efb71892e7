package llm

import (
	"context"
	"encoding/json"
	"strings"

	"retail-insights/internal/model"
	"retail-insights/pkg/llmprovider"
)

// ParseIntent makes one model call and validates its output against the intent schema.
func (p *intentParser) ParseIntent(ctx context.Context, query string) (model.Intent, error) {
	req := llmprovider.NewTextRequest(intentSystemPrompt, query)
	req.JSONOutput = true

	resp, err := p.gen.GenerateContent(ctx, req)
	if err != nil {
		p.l.Errorf(ctx, "%s: generate: %v", LogPrefixParse, err)
		return model.Intent{}, &IntentParsingError{Reason: "LLM call failed while parsing intent", Err: err}
	}

	raw := stripCodeFence(resp.Content.Text())
	if raw == "" {
		return model.Intent{}, &IntentParsingError{Reason: "LLM returned empty response while parsing intent"}
	}

	intent, err := model.ParseIntent([]byte(raw))
	if err != nil {
		p.l.Warnf(ctx, "%s: rejected output %q: %v", LogPrefixParse, raw, err)

		if !json.Valid([]byte(raw)) {
			return model.Intent{}, &IntentParsingError{Reason: "LLM output was not valid JSON", Raw: raw, Err: err}
		}
		return model.Intent{}, &IntentParsingError{Reason: "LLM output failed schema validation", Raw: raw, Err: err}
	}

	p.l.Debugf(ctx, "%s: %s", LogPrefixParse, raw)
	return intent, nil
}

// stripCodeFence removes a surrounding Markdown code fence, with or without a language tag.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
