package gemini

import (
	"errors"
	"net/http"
	"time"

	"google.golang.org/genai"
)

// Config configures the Gemini client.
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration

	// BaseURL overrides the Gemini API endpoint. Empty uses the SDK default.
	BaseURL string

	// HTTPClient overrides the transport used by the SDK.
	HTTPClient *http.Client
}

// Validate checks required fields and fills defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("gemini: API key is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return nil
}

// Request is a text generation request.
type Request struct {
	SystemInstruction *Content
	Messages          []Content
	Temperature       float64
	MaxTokens         int

	// JSONOutput asks the model for an application/json response.
	JSONOutput bool
}

// Content is one message. Role is "user" or "model".
type Content struct {
	Role  string
	Parts []Part
}

// Part holds a text segment of a message.
type Part struct {
	Text string
}

// Response is the first candidate of a generation.
type Response struct {
	Content Content
	Usage   *Usage
}

// Text concatenates the text parts of the response.
func (r *Response) Text() string {
	var out string
	for _, p := range r.Content.Parts {
		out += p.Text
	}
	return out
}

// Usage tracks token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

type geminiImpl struct {
	client *genai.Client
	model  string
}
