package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorMessage(t *testing.T) {
	err := NewParsingError("bad row", stderrors.New("eof"))
	assert.Equal(t, "[PARSING] bad row: eof", err.Error())

	bare := NewValidationError("missing field")
	assert.Equal(t, "[VALIDATION] missing field", bare.Error())
}

func TestIsType(t *testing.T) {
	err := NewStorageError("write failed", nil)
	assert.True(t, IsType(err, ErrTypeStorage))
	assert.False(t, IsType(err, ErrTypeParsing))
	assert.False(t, IsType(stderrors.New("plain"), ErrTypeStorage))
	assert.False(t, IsType(nil, ErrTypeStorage))
}

func TestIsTypeThroughWrapping(t *testing.T) {
	inner := NewMissingFileError("data/in.csv", nil)
	wrapped := fmt.Errorf("pipeline failed: %w", inner)
	assert.True(t, IsType(wrapped, ErrTypeNotFound))
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := NewStorageError("save failed", cause)
	assert.True(t, stderrors.Is(err, cause))
}

func TestWithContext(t *testing.T) {
	err := NewValidationError("bad input").WithContext("file", "in.csv")
	assert.Equal(t, "in.csv", err.Context["file"])
}

func TestMissingColumnError(t *testing.T) {
	err := NewMissingColumnError("hours.csv", "DateVolunteered")
	require.True(t, IsType(err, ErrTypeValidation))
	assert.Contains(t, err.Error(), "hours.csv")
	assert.Contains(t, err.Error(), "DateVolunteered")
	assert.Equal(t, "DateVolunteered", err.Context["column"])
}
