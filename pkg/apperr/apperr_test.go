package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("order not found")))
	assert.Equal(t, KindConflict, KindOf(Conflict("order is cancelled")))
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
	assert.Equal(t, Kind(""), KindOf(nil))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("handling request: %w", InvalidTransition("pending -> served"))
	assert.Equal(t, KindInvalidTransition, KindOf(err))
	assert.True(t, Is(err, KindInvalidTransition))
}

func TestUpstreamKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Upstream("payment gateway", cause)
	assert.Equal(t, KindUpstream, KindOf(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "payment gateway")
	assert.Contains(t, err.Error(), "connection refused")
}
