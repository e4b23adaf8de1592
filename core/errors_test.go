package core

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	err := Error(EMISSING, "font not found: %s", "Arial")
	assert.Equal(t, EMISSING, Code(err))
	assert.Equal(t, "font not found: Arial", UserMessage(err))
	assert.Equal(t, "[122] font not found: Arial", err.Error())
}

func TestWrapKeepsCause(t *testing.T) {
	err := WrapError(fs.ErrNotExist, EIO, "failed to read font file '%s'", "x.ttf")
	assert.Equal(t, EIO, Code(err))
	assert.True(t, errors.Is(err, fs.ErrNotExist), "expected cause to be retained")
	assert.Contains(t, err.Error(), "x.ttf")
}

func TestCodeOfForeignErrors(t *testing.T) {
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, EINTERNAL, Code(errors.New("boom")))
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, "internal error", UserMessage(errors.New("boom")))
}

func TestWrapNil(t *testing.T) {
	err := WrapError(nil, ECONNECTION, "receiver gone")
	assert.Equal(t, ECONNECTION, Code(err))
	assert.Equal(t, "receiver gone", UserMessage(err))
	assert.Contains(t, errors.Unwrap(err).Error(), "transmission-error")
}

func TestErrorCodeStrings(t *testing.T) {
	for code, text := range map[ErrorCode]string{
		EIO:          "i/o error",
		EPARSE:       "parse error",
		EINVALID:     "invalid",
		ErrorCode(7): "undefined error",
	} {
		assert.Equal(t, text, code.String())
	}
}
