package checkers

import (
	"context"
	"errors"
)

// CompletionChecker reports whether the completion backend was configured
// at startup. A missing credential keeps the service alive but not ready.
type CompletionChecker struct {
	configured bool
}

func NewCompletionChecker(configured bool) *CompletionChecker {
	return &CompletionChecker{configured: configured}
}

func (c *CompletionChecker) Name() string { return "completion" }

func (c *CompletionChecker) Check(ctx context.Context) error {
	if !c.configured {
		return errors.New("completion backend is not configured")
	}
	return nil
}
