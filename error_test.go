package icondeck_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/icondeck"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := icondeck.Errorf(icondeck.ENOTFOUND, "icon %q not found", "arrow")

	assert.Equal(t, icondeck.ENOTFOUND, icondeck.ErrorCode(err))
	assert.Equal(t, "icon \"arrow\" not found", icondeck.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, icondeck.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, icondeck.EINTERNAL, icondeck.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, icondeck.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", icondeck.ErrorMessage(errors.New("boom")))
}
