package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryRecordsCopies(t *testing.T) {
	t.Parallel()

	m := &Memory{}
	require.NoError(t, m.Copy("border: 1px solid #1d1d1f;"))
	require.NoError(t, m.Copy("box-shadow: none;"))

	require.Equal(t, "box-shadow: none;", m.Last())
	require.Equal(t, 2, m.Count())
}

func TestMemoryFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("denied")
	m := &Memory{Err: boom}

	require.ErrorIs(t, m.Copy("x"), boom)
	require.Equal(t, "", m.Last())
	require.Zero(t, m.Count())
}

func TestSystemSatisfiesCopier(t *testing.T) {
	t.Parallel()

	var c Copier = System{}
	require.NotNil(t, c)
}
