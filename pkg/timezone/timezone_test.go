package timezone_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/babel/pkg/timezone"
)

func TestSystem(t *testing.T) {
	t.Parallel()

	r := timezone.System()

	t.Run("resolves UTC", func(t *testing.T) {
		t.Parallel()
		loc, err := r.Location("UTC")
		require.NoError(t, err)
		require.Equal(t, time.UTC, loc)
	})

	t.Run("resolves region names", func(t *testing.T) {
		t.Parallel()
		loc, err := r.Location("Europe/Vienna")
		require.NoError(t, err)
		require.Equal(t, "Europe/Vienna", loc.String())
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"Mars/Olympus_Mons", "", "../etc/passwd", "/etc/localtime"} {
			_, err := r.Location(name)
			require.ErrorIs(t, err, timezone.ErrUnknown, name)
		}
	})
}

func TestDir(t *testing.T) {
	t.Parallel()

	r := timezone.Dir(t.TempDir())

	loc, err := r.Location("UTC")
	require.NoError(t, err)
	require.Equal(t, time.UTC, loc)

	_, err = r.Location("Europe/Vienna")
	require.ErrorIs(t, err, timezone.ErrUnknown)
}

func TestNew(t *testing.T) {
	t.Parallel()

	loc, err := timezone.New("").Location("Europe/Vienna")
	require.NoError(t, err)
	require.Equal(t, "Europe/Vienna", loc.String())

	_, err = timezone.New(t.TempDir()).Location("Europe/Vienna")
	require.ErrorIs(t, err, timezone.ErrUnknown)
}

func TestResolverFunc(t *testing.T) {
	t.Parallel()

	fixed := time.FixedZone("X", 3600)
	r := timezone.ResolverFunc(func(string) (*time.Location, error) { return fixed, nil })

	loc, err := r.Location("anything")
	require.NoError(t, err)
	require.Same(t, fixed, loc)
}
