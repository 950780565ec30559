package keybridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/findpopup/internal/domain/entity"
	"github.com/bnema/findpopup/internal/ui/input"
)

func TestParse(t *testing.T) {
	code, mods, err := Parse("27:0")
	require.NoError(t, err)
	assert.Equal(t, input.Chord{Key: input.KeyEscape}, input.DecodeContent(code, mods))

	code, mods, err = Parse(" 13:4\n")
	require.NoError(t, err)
	assert.Equal(t, input.Chord{Key: input.KeyEnter, Mods: input.ModAlt}, input.DecodeContent(code, mods))
}

func TestParse_Rejects(t *testing.T) {
	for _, payload := range []string{"", "27", "x:0", "27:y", "27:-1", "27:300"} {
		_, _, err := Parse(payload)
		assert.Error(t, err, payload)
	}
}

func TestFormat_MatchesContentEncoding(t *testing.T) {
	chord := input.Chord{Key: input.KeyEnter, Mods: input.ModAlt | input.ModShift}
	code, mods := input.EncodeContent(chord)

	gotCode, gotMods, err := Parse(Format(code, mods))
	require.NoError(t, err)
	assert.Equal(t, chord, input.DecodeContent(gotCode, gotMods))
}

func TestScript_PostsToHandler(t *testing.T) {
	assert.Contains(t, Script, "messageHandlers."+HandlerName)
	assert.Contains(t, Script, "'keydown'")
}

func TestScript_CancelsBareEscape(t *testing.T) {
	assert.Contains(t, Script, "e.keyCode === 27 && mods === 0")
	assert.Contains(t, Script, "e.preventDefault()")
}

func TestConsumedInPage_MatchesContentHide(t *testing.T) {
	codes := []uint{input.ContentKeyEscape, input.ContentKeyEnter, 65}
	for _, code := range codes {
		for mods := uint(0); mods < 16; mods++ {
			hides := input.Classify(entity.SourceContentSurface, input.DecodeContent(code, mods)) == input.ActionHide
			assert.Equal(t, hides, ConsumedInPage(code, mods), "key %d mods %d", code, mods)
		}
	}
}

func TestRouteKey(t *testing.T) {
	const (
		window  uintptr = 0x10
		box     uintptr = 0x20
		view    uintptr = 0x30
		inner   uintptr = 0x31
		heading uintptr = 0x40
	)

	tests := []struct {
		name     string
		ancestry []uintptr
		content  uintptr
		want     Route
	}{
		{name: "page focused", ancestry: []uintptr{view, box, window}, content: view, want: RouteContent},
		{name: "inside page", ancestry: []uintptr{inner, view, box, window}, content: view, want: RouteContent},
		{name: "title strip focused", ancestry: []uintptr{heading, box, window}, content: view, want: RouteHost},
		{name: "nothing focused", content: view, want: RouteHost},
		{name: "window without page", ancestry: []uintptr{box, window}, want: RouteHost},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RouteKey(tt.ancestry, tt.content))
		})
	}
}

func TestRouteKey_PageAltEnterNeverOpensPreview(t *testing.T) {
	chord := input.Chord{Key: input.KeyEnter, Mods: input.ModAlt}
	require.Equal(t, RouteContent, RouteKey([]uintptr{0x30}, 0x30))

	code, mods := input.EncodeContent(chord)
	assert.Equal(t, input.ActionNone, input.Classify(entity.SourceContentSurface, input.DecodeContent(code, mods)))
	assert.False(t, ConsumedInPage(code, mods), "the page keeps Alt+Enter")
}
