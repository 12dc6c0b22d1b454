package errors

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsCode(t *testing.T) {
	base := ConfigInvalid("variance must be >= 0")
	wrapped := Wrap(base, "load config")

	assert.Equal(t, CodeConfigInvalid, GetCode(wrapped))
	assert.Equal(t, "load config: variance must be >= 0", wrapped.Error())
	assert.True(t, errors.Is(wrapped, base))
}

func TestWrapForeignError(t *testing.T) {
	wrapped := Wrapf(io.EOF, "read %s", "hyperparameters.yaml")

	assert.Equal(t, CodeInternalError, GetCode(wrapped))
	assert.ErrorIs(t, wrapped, io.EOF)
	assert.Equal(t, "read hyperparameters.yaml: EOF", wrapped.Error())
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "nothing"))
	assert.NoError(t, Wrapf(nil, "nothing %d", 1))
	assert.NoError(t, WithCode(CodeInvalidInput, nil))
}

func TestWithCode(t *testing.T) {
	err := WithCode(CodeSimulationError, io.ErrUnexpectedEOF)
	assert.Equal(t, CodeSimulationError, GetCode(err))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, "unexpected EOF", err.Error())
	assert.Equal(t, "UNKNOWN", GetCode(io.EOF))
}
