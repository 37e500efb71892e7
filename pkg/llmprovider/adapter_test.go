package llmprovider

import (
	"context"
	"testing"

	"retail-insights/pkg/deepseek"
	"retail-insights/pkg/qwen"
)

type fakeQwen struct{ got *qwen.Request }

func (f *fakeQwen) GenerateContent(_ context.Context, req *qwen.Request) (*qwen.Response, error) {
	f.got = req
	return &qwen.Response{
		Content: qwen.Content{Role: "assistant", Parts: []qwen.Part{{Text: "answer"}}},
		Usage:   &qwen.Usage{TotalTokens: 7},
	}, nil
}

func (f *fakeQwen) Model() string { return "qwen-plus" }

type fakeDeepSeek struct{ got *deepseek.Request }

func (f *fakeDeepSeek) GenerateContent(_ context.Context, req *deepseek.Request) (*deepseek.Response, error) {
	f.got = req
	return &deepseek.Response{Content: "{}", Model: "deepseek-chat"}, nil
}

func (f *fakeDeepSeek) Model() string { return "deepseek-chat" }

func TestQwenAdapter(t *testing.T) {
	client := &fakeQwen{}
	resp, err := NewQwenAdapter(client).GenerateContent(context.Background(), NewTextRequest("rules", "question"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.got.SystemInstruction == nil || client.got.SystemInstruction.Text() != "rules" {
		t.Errorf("system instruction not forwarded: %+v", client.got.SystemInstruction)
	}
	if len(client.got.Messages) != 1 || client.got.Messages[0].Text() != "question" {
		t.Errorf("unexpected messages: %+v", client.got.Messages)
	}
	if resp.Content.Text() != "answer" || resp.ProviderName != ProviderQwen || resp.Usage.TotalTokens != 7 {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestDeepSeekAdapter_PrependsSystem(t *testing.T) {
	client := &fakeDeepSeek{}
	req := NewTextRequest("rules", "question")
	req.JSONOutput = true

	if _, err := NewDeepSeekAdapter(client).GenerateContent(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(client.got.Messages) != 2 || client.got.Messages[0].Role != RoleSystem || client.got.Messages[0].Content != "rules" {
		t.Errorf("system message not prepended: %+v", client.got.Messages)
	}
	if !client.got.JSONOutput {
		t.Error("JSONOutput not forwarded")
	}
}
