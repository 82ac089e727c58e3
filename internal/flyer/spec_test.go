package flyer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultSpecs(t *testing.T) {
	specs := DefaultSpecs()
	require.Len(t, specs, 3)

	slugs := make([]string, 0, len(specs))
	for _, s := range specs {
		require.NoError(t, s.Validate())
		require.True(t, s.HasSecondary(), "slug=%s", s.Slug)
		slugs = append(slugs, s.Slug)
	}
	require.Equal(t, []string{"general", "mission_dolores", "devoe_park"}, slugs)
	require.Equal(t, "flyer_devoe_park_letter", specs[2].baseName(Letter))
}

func TestSpecValidate_RequiredFields(t *testing.T) {
	base := DefaultSpecs()[0]

	s := base
	s.Title = "  "
	err := s.Validate()
	require.True(t, errors.Is(err, ErrInvalidSpec), "err=%v", err)
	require.Contains(t, err.Error(), "title")

	s = base
	s.PrimaryURL = ""
	require.ErrorIs(t, s.Validate(), ErrInvalidSpec)

	s = base
	s.Slug = "../escape"
	require.ErrorIs(t, s.Validate(), ErrInvalidSpec)
}

func TestSpecHasSecondary_NeedsBoth(t *testing.T) {
	s := DefaultSpecs()[0]
	s.SecondaryLabel = ""
	require.False(t, s.HasSecondary())
	require.NoError(t, s.Validate())
}

func TestSelect(t *testing.T) {
	specs := DefaultSpecs()

	all, err := Select(specs, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)

	got, err := Select(specs, []string{"devoe_park", " general "})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "general", got[0].Slug)
	require.Equal(t, "devoe_park", got[1].Slug)

	_, err = Select(specs, []string{"golden_gate"})
	require.ErrorIs(t, err, ErrInvalidSpec)

	// The first unknown slug in argument order is the one reported.
	for i := 0; i < 20; i++ {
		_, err = Select(specs, []string{"general", "zeta", "alpha", "mu"})
		require.ErrorContains(t, err, `unknown slug "zeta"`)
	}
}
