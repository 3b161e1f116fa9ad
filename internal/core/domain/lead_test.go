package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeadAvailableActions(t *testing.T) {
	pending := Lead{Status: LeadPending}
	assert.Equal(t, []LeadAction{ActionMarkContacted, ActionMarkCompleted}, pending.AvailableActions())

	contacted := Lead{Status: LeadContacted}
	assert.Equal(t, []LeadAction{ActionMarkCompleted}, contacted.AvailableActions())

	completed := Lead{Status: LeadCompleted}
	assert.Equal(t, []LeadAction{ActionMarkContacted}, completed.AvailableActions())
}

func TestLeadStatusValid(t *testing.T) {
	assert.True(t, LeadPending.Valid())
	assert.True(t, LeadCompleted.Valid())
	assert.False(t, LeadStatus("archived").Valid())
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "Invalid email or password", UserMessage(&APIError{StatusCode: 401, Detail: "Invalid email or password"}, "Invalid credentials"))
	assert.Equal(t, "Invalid credentials", UserMessage(&APIError{StatusCode: 500}, "Invalid credentials"))
	assert.Equal(t, MsgInvalidPrice, UserMessage(&ValidationError{Message: MsgInvalidPrice}, "x"))
	assert.Equal(t, "Not authenticated", UserMessage(ErrNotAuthenticated, "x"))
	assert.Equal(t, "x", UserMessage(ErrNotFound, "x"))
}
