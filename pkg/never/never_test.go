package never_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/absurd/pkg/never"
)

func TestAbsurd(t *testing.T) {
	t.Parallel()

	t.Run("panics when a Never value is witnessed", func(t *testing.T) {
		t.Parallel()

		var n never.Never
		assert.PanicsWithValue(t,
			"never: computation declared as never-completing produced a success value",
			func() { never.Absurd[int](n) },
		)
	})
}

func TestFail(t *testing.T) {
	t.Parallel()

	t.Run("forwards the error unchanged", func(t *testing.T) {
		t.Parallel()

		sentinel := errors.New("boom")
		_, err := never.Fail(sentinel)
		require.Equal(t, sentinel, err)
	})

	t.Run("panics on nil error", func(t *testing.T) {
		t.Parallel()

		assert.PanicsWithValue(t, "never: Fail called with a nil error", func() {
			_, _ = never.Fail(nil)
		})
	})
}
