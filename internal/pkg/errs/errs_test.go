//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"groomly/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestIsSeesMarks(t *testing.T) {
	sentinel := errs.New("sentinel")
	cause := errs.New("underlying cause")

	marked := errs.Mark(cause, sentinel)

	assert.True(t, errs.Is(marked, sentinel))
	assert.True(t, errs.Is(marked, cause))
	assert.False(t, errs.Is(marked, errs.New("unrelated")))
}

func TestIsSeesWrappedChain(t *testing.T) {
	sentinel := errs.New("sentinel")

	wrapped := errs.Wrap(sentinel, "while doing something")

	assert.True(t, errs.Is(wrapped, sentinel))
	// Plain wrapping stays visible to the standard library too.
	assert.True(t, errors.Is(wrapped, sentinel))
}

func TestMarkOfNilReturnsTheMark(t *testing.T) {
	sentinel := errs.New("sentinel")

	assert.Equal(t, sentinel, errs.Mark(nil, sentinel))
	assert.Nil(t, errs.Wrap(nil, "ignored"))
}
