package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Name() string                  { return s.name }
func (s stubChecker) Check(_ context.Context) error { return s.err }

func TestReadyAllPassing(t *testing.T) {
	svc := NewService(stubChecker{name: "a"}, stubChecker{name: "b"})
	assert.NoError(t, svc.Ready(context.Background()))
}

func TestReadyFirstFailureWins(t *testing.T) {
	boom := errors.New("backend down")
	svc := NewService(stubChecker{name: "a"}, stubChecker{name: "b", err: boom})
	assert.ErrorIs(t, svc.Ready(context.Background()), boom)
}

func TestReadyNoCheckers(t *testing.T) {
	assert.NoError(t, NewService().Ready(context.Background()))
}
