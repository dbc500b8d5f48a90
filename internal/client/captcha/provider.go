// Package captcha abstracts the anti-automation challenge that must
// accompany sensitive form submissions. The backend expects a proof token
// with every login; where that proof comes from is the provider's business.
package captcha

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrChallengeUnavailable means the provider never became ready to produce
// a proof. Login surfaces this instead of hanging indefinitely.
var ErrChallengeUnavailable = errors.New("challenge provider not loaded yet")

// Provider produces short-lived proof tokens on demand for a given action
// label (e.g. "login", "signup").
//
// Ready is an asynchronous precondition: callers must wait for it (under a
// deadline) before requesting a token.
type Provider interface {
	Ready(ctx context.Context) error
	Token(ctx context.Context, action string) (string, error)
}

// StaticProvider serves a pre-issued proof secret, the way non-browser API
// clients are typically whitelisted. Ready fails when no secret is
// configured.
type StaticProvider struct {
	secret string
}

func NewStaticProvider(secret string) *StaticProvider {
	return &StaticProvider{secret: secret}
}

func (p *StaticProvider) Ready(ctx context.Context) error {
	if p.secret == "" {
		return ErrChallengeUnavailable
	}
	return nil
}

func (p *StaticProvider) Token(ctx context.Context, action string) (string, error) {
	if p.secret == "" {
		return "", ErrChallengeUnavailable
	}
	return p.secret, nil
}

// PromptProvider asks the user to solve the challenge in a browser and
// paste the resulting token into the terminal.
type PromptProvider struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewPromptProvider(reader *bufio.Reader, out io.Writer) *PromptProvider {
	return &PromptProvider{reader: reader, out: out}
}

func (p *PromptProvider) Ready(ctx context.Context) error {
	return nil
}

func (p *PromptProvider) Token(ctx context.Context, action string) (string, error) {
	if _, err := fmt.Fprintf(p.out, "Paste the challenge token for %q\n> ", action); err != nil {
		return "", err
	}
	line, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", fmt.Errorf("empty challenge token")
	}
	return line, nil
}
