package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#ff0000", color.NRGBA{R: 0xff, A: 0xff}},
		{"#FF0000", color.NRGBA{R: 0xff, A: 0xff}},
		{"#0f0", color.NRGBA{G: 0xff, A: 0xff}},
		{"#0000ff00", color.NRGBA{B: 0xff}},
		{" white ", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{"Black", color.NRGBA{A: 0xff}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColorRejects(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#gggggg", "chartreusey", "rgb(1,2,3)"} {
		_, err := ParseColor(in)
		assert.Error(t, err, "input %q", in)
	}
}
