// Test Type: Unit Test
// Description: Tests for the formatting operations exposed as template functions

package style

import (
	"testing"

	"github.com/arthur-debert/stylize/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyle(t *testing.T) {
	r, _ := newTestResolver(t, map[string]interface{}{
		"color1": "red",
		"color2": "green",
	})

	out, err := r.Style("color1", "foo")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[31mfoo\x1b[39;49;00m", out)

	out, err = r.Style("color2", "bar")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[32mbar\x1b[39;49;00m", out)
}

func TestStyleIgnoresAlternativeWhenEnabled(t *testing.T) {
	r, _ := newTestResolver(t, map[string]interface{}{"color1": "bold red"})

	out, err := r.Style("color1", "foo", "bar")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[1m\x1b[31mfoo\x1b[39;49;00m", out)
}

func TestStyleNoText(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		colors  map[string]interface{}
	}{
		{"enabled_valid_color", true, map[string]interface{}{"color1": "red"}},
		{"enabled_invalid_color", true, map[string]interface{}{"color1": "foo"}},
		{"disabled_valid_color", false, map[string]interface{}{"color1": "red"}},
		{"disabled_invalid_color", false, map[string]interface{}{"color1": "foo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestResolver(t, tt.colors)
			r.enabled = tt.enabled

			out, err := r.Style("color1", "")
			require.NoError(t, err)
			assert.Equal(t, "", out)

			out, err = r.Style("color1", "", "alternative")
			require.NoError(t, err)
			assert.Equal(t, "", out)
		})
	}
}

func TestStyleDisabled(t *testing.T) {
	r, cfg := newTestResolver(t, nil)
	r.enabled = false

	for _, def := range []interface{}{"red", "foo"} {
		setupColors(t, r, cfg, map[string]interface{}{"color1": def})

		out, err := r.Style("color1", "foo")
		require.NoError(t, err)
		assert.Equal(t, "foo", out)

		out, err = r.Style("color1", "foo", "bar")
		require.NoError(t, err)
		assert.Equal(t, "bar", out)

		out, err = r.Style("undefined", "foo")
		require.NoError(t, err)
		assert.Equal(t, "foo", out)
	}
}

func TestStyleUndefinedColor(t *testing.T) {
	r, _ := newTestResolver(t, nil)

	out, err := r.Style("color1", "foo")
	require.NoError(t, err)
	assert.Equal(t, "foo", out)
}

func TestStyleInvalidColorCodes(t *testing.T) {
	r, _ := newTestResolver(t, map[string]interface{}{"color1": "foo"})

	for _, text := range []string{"bar", "anything else"} {
		out, err := r.Style("color1", text)
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrUnknownColorCodeError)
		assert.Contains(t, err.Error(), "no such ANSI code foo")
		assert.Empty(t, out)
	}
}

func TestPickByColor(t *testing.T) {
	r, _ := newTestResolver(t, nil)

	assert.Equal(t, "", r.PickByColor("foo"))
	assert.Equal(t, "bar", r.PickByColor("foo", "bar"))

	r.enabled = false
	assert.Equal(t, "foo", r.PickByColor("foo"))
	assert.Equal(t, "foo", r.PickByColor("foo", "bar"))
}

func TestHyperlink(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		env     fakeEnv
		text    []string
		want    string
	}{
		{
			name:    "with_text",
			enabled: true,
			env:     fakeEnv{},
			text:    []string{"foo"},
			want:    "\x1b]8;;http://example.com\x1b\\foo\x1b]8;;\x1b\\",
		},
		{
			name:    "no_text_defaults_to_url",
			enabled: true,
			env:     fakeEnv{},
			want:    "\x1b]8;;http://example.com\x1b\\http://example.com\x1b]8;;\x1b\\",
		},
		{
			name:    "disabled",
			enabled: false,
			env:     fakeEnv{},
			text:    []string{"foo"},
			want:    "foo",
		},
		{
			name:    "disabled_no_text",
			enabled: false,
			env:     fakeEnv{},
			want:    "http://example.com",
		},
		{
			name:    "no_link",
			enabled: true,
			env:     fakeEnv{EnvNoLink: "1"},
			text:    []string{"foo"},
			want:    "foo",
		},
		{
			name:    "no_link_empty_value",
			enabled: true,
			env:     fakeEnv{EnvNoLink: ""},
			text:    []string{"foo"},
			want:    "foo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestResolver(t, nil)
			r.enabled = tt.enabled
			r.env = tt.env

			assert.Equal(t, tt.want, r.Hyperlink("http://example.com", tt.text...))
		})
	}
}

func TestURLEncode(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{[]string{"http://example.com?foo=bar"}, "http%3A//example.com%3Ffoo%3Dbar"},
		{[]string{""}, ""},
		{nil, ""},
		{[]string{"a b+c"}, "a%20b%2Bc"},
		{[]string{"Artist/Album (2001)"}, "Artist/Album%20%282001%29"},
		{[]string{"-_.~"}, "-_.~"},
		{[]string{"100%"}, "100%25"},
		{[]string{"Björk"}, "Bj%C3%B6rk"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, URLEncode(tt.in...), "URLEncode(%q)", tt.in)
	}
}
