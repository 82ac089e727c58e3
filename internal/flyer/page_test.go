package flyer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLetterGeometry(t *testing.T) {
	require.NoError(t, Letter.Validate())

	w, h := Letter.Size()
	require.Equal(t, 2550, w)
	require.Equal(t, 3300, h)

	pw, ph := Letter.Points()
	require.InDelta(t, 612.0, pw, 1e-9)
	require.InDelta(t, 792.0, ph, 1e-9)

	require.Equal(t, 480, Letter.Px(1.6))
	require.Equal(t, 45, Letter.Px(0.15))
	require.InDelta(t, 74.0, Letter.fontPx(74), 1e-9)
}

func TestPageFontScalesWithDPI(t *testing.T) {
	p := Page{Name: "letter", WidthIn: 8.5, HeightIn: 11, DPI: 150}
	require.InDelta(t, 37.0, p.fontPx(74), 1e-9)
	w, h := p.Size()
	require.Equal(t, 1275, w)
	require.Equal(t, 1650, h)
}

func TestPageValidate(t *testing.T) {
	cases := map[string]Page{
		"empty name": {Name: "", WidthIn: 8.5, HeightIn: 11, DPI: 300},
		"bad name":   {Name: "Letter Size", WidthIn: 8.5, HeightIn: 11, DPI: 300},
		"zero width": {Name: "x", WidthIn: 0, HeightIn: 11, DPI: 300},
		"low dpi":    {Name: "x", WidthIn: 8.5, HeightIn: 11, DPI: 10},
		"huge dpi":   {Name: "x", WidthIn: 8.5, HeightIn: 11, DPI: 4800},
		"neg height": {Name: "x", WidthIn: 8.5, HeightIn: -1, DPI: 300},
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			err := p.Validate()
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidPage), "err=%v", err)
		})
	}
}
