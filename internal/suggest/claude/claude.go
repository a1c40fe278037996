// Package claude implements suggest.Completer on the Anthropic Messages
// API via the go-anthropic client.
package claude

import (
	"context"
	"fmt"

	"github.com/liushuangls/go-anthropic/v2"
)

type Client struct {
	client *anthropic.Client
	model  anthropic.Model
}

func NewClient(apiKey, model string, opts ...anthropic.ClientOption) *Client {
	return &Client{
		client: anthropic.NewClient(apiKey, opts...),
		model:  anthropic.Model(model),
	}
}

// Complete sends one prompt as a single user message and returns the
// first text block of the reply.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	// 512 tokens is plenty for five packing items or three spot records.
	resp, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     c.model,
		MaxTokens: 512,
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to call claude: %w", err)
	}
	return resp.GetFirstContentText(), nil
}
