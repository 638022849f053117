// Copyright 2025 The Recicla Authors
// SPDX-License-Identifier: Apache-2.0

// Package gemini calls the Gemini generateContent API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jcodagnone/recicla/utils/httputils"
	"google.golang.org/genai"
)

const (
	DefaultModel    = "models/gemini-2.0-flash"
	DefaultEndpoint = "https://generativelanguage.googleapis.com/"
	apiVersion      = "v1beta"
)

// Config for the Gemini client.
type Config struct {
	APIKey   string
	Model    string        // defaults to DefaultModel
	Endpoint string        // defaults to DefaultEndpoint
	Timeout  time.Duration // per request, defaults to 30s
	Trace    io.Writer     // when set, HTTP exchanges are dumped here
}

// Client generates text completions. It is safe for concurrent use.
type Client struct {
	genai *genai.Client
	model string
}

func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini: missing API key")
	}

	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	if !strings.HasPrefix(cfg.Model, "models/") {
		cfg.Model = "models/" + cfg.Model
	}

	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httputils.NewClient(cfg.Timeout, nil, cfg.Trace),
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    cfg.Endpoint,
			APIVersion: apiVersion,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	return &Client{genai: client, model: cfg.Model}, nil
}

// Model returns the model resource name in use.
func (c *Client) Model() string {
	return c.model
}

// Generate sends prompt as a single user turn and returns the text of the
// first candidate. A reply without candidates yields an empty string and no
// error.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.genai.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generating content with %s: %w", c.model, err)
	}

	return resp.Text(), nil
}
