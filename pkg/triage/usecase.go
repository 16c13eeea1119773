package triage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/smarthealth/connect/pkg/hospital"
	"github.com/smarthealth/connect/pkg/llm"
)

// ErrEmptyMessage is returned when the user message is missing or blank.
var ErrEmptyMessage = errors.New("empty message")

// Service describes the application use case for one chat turn.
type Service interface {
	Chat(ctx context.Context, message string) (string, error)
}

type service struct {
	model      llm.CompletionModel
	system     string
	defaultLoc hospital.Location
}

// NewService creates the default implementation. defaultLoc substitutes for
// a missing user_location tool argument; real deployments should feed a
// client-supplied location here.
func NewService(model llm.CompletionModel, defaultLoc hospital.Location) Service {
	return &service{
		model:      model,
		system:     SystemInstruction,
		defaultLoc: defaultLoc,
	}
}

// Chat runs one user turn through the fixed two-step protocol: ask with the
// locator tool declared, execute at most one round of requested calls
// locally, then ask once more for the final text. Deliberately not a loop;
// the upstream contract guarantees the second reply is final text.
func (s *service) Chat(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyMessage
	}

	turns := []llm.Turn{{Role: llm.RoleUser, Content: message}}
	res, err := s.model.Complete(ctx, turns, s.system, []llm.ToolSpec{hospital.Spec()})
	if err != nil {
		return "", fmt.Errorf("completion: %w", err)
	}
	if len(res.ToolCalls) == 0 {
		return res.Content, nil
	}

	turns = append(turns, llm.Turn{
		Role:      llm.RoleAssistant,
		Content:   res.Content,
		ToolCalls: res.ToolCalls,
	})
	for _, call := range res.ToolCalls {
		turns = append(turns, llm.Turn{
			Role:       llm.RoleTool,
			ToolCallID: call.ID,
			ToolName:   call.Name,
			Content:    s.runTool(call),
		})
	}

	final, err := s.model.Complete(ctx, turns, s.system, nil)
	if err != nil {
		return "", fmt.Errorf("completion: %w", err)
	}
	return final.Content, nil
}

type findArgs struct {
	Specialty    string             `json:"specialty"`
	FacilityType string             `json:"type"`
	UserLocation *hospital.Location `json:"user_location"`
}

// runTool executes a single requested call. Unknown names are reported back
// to the model as text, never as an error to the caller.
func (s *service) runTool(call llm.ToolCall) string {
	if call.Name != hospital.ToolName {
		return "Tool not found"
	}
	return hospital.Find(s.resolveQuery(call.Arguments))
}

// resolveQuery decodes locator arguments, substituting the configured
// default location when user_location is absent or null. Malformed argument
// JSON falls through to zero values and the generic advisory.
func (s *service) resolveQuery(args json.RawMessage) hospital.Query {
	var a findArgs
	if len(args) > 0 {
		_ = json.Unmarshal(args, &a)
	}
	loc := s.defaultLoc
	if a.UserLocation != nil {
		loc = *a.UserLocation
	}
	return hospital.Query{
		Specialty:    a.Specialty,
		FacilityType: a.FacilityType,
		Location:     loc,
	}
}
