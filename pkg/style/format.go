package style

import (
	"net/url"
	"strings"

	"github.com/muesli/termenv"
)

// Style colors text with the named color. Empty text always yields "".
// When styling is disabled the alternative, if given, replaces text.
// Undefined colors leave text unchanged.
func (r *Resolver) Style(name, text string, alternative ...string) (string, error) {
	if text == "" {
		return "", nil
	}

	if !r.enabled {
		if len(alternative) > 0 {
			return alternative[0], nil
		}
		return text, nil
	}

	codes, defined, err := r.Resolve(name)
	if err != nil {
		return "", err
	}
	if !defined {
		return text, nil
	}
	return r.universe.Colorize(codes, text), nil
}

// PickByColor returns disabled when styling is off and enabled (default
// "") otherwise.
func (r *Resolver) PickByColor(disabled string, enabled ...string) string {
	if !r.enabled {
		return disabled
	}
	if len(enabled) > 0 {
		return enabled[0]
	}
	return ""
}

// Hyperlink wraps text in an OSC 8 hyperlink to link. Text defaults to the
// link itself. NO_LINK or disabled styling returns the text unchanged.
func (r *Resolver) Hyperlink(link string, text ...string) string {
	linkText := link
	if len(text) > 0 {
		linkText = text[0]
	}

	if _, ok := lookupEnv(r.env, EnvNoLink); ok || !r.enabled {
		return linkText
	}
	return termenv.Hyperlink(link, linkText)
}

// pathSafe restores the characters QueryEscape encodes differently from
// path quoting: "/" stays literal and spaces become %20.
var pathSafe = strings.NewReplacer("%2F", "/", "+", "%20")

// URLEncode percent-encodes every byte outside A-Z a-z 0-9 and "_.-~/".
func URLEncode(text ...string) string {
	if len(text) == 0 || text[0] == "" {
		return ""
	}
	return pathSafe.Replace(url.QueryEscape(text[0]))
}
