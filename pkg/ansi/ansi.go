// Package ansi holds the known-code universe used to validate color
// definitions and the primitive that wraps text in SGR escape sequences.
//
// The default table mirrors the attribute names a beets configuration may
// reference under ui.colors, so an existing config resolves unchanged.
package ansi

import (
	"sort"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

// Reset restores default foreground, background and attributes.
const Reset = termenv.CSI + "39;49;00m"

// Universe is the set of attribute-code names a colorizer understands.
type Universe interface {
	// Has reports whether code is a known attribute name.
	Has(code string) bool
	// Colorize wraps text in the escape sequences for codes followed by
	// a reset. Every code must be known to the universe.
	Colorize(codes []string, text string) string
}

// Table maps attribute-code names to SGR parameters.
type Table map[string]int

// Default is the attribute table used unless a host supplies its own.
var Default = Table{
	// Styles
	"normal":    0,
	"bold":      1,
	"faint":     2,
	"underline": 4,
	"inverse":   7,

	// Text colors
	"black":   30,
	"red":     31,
	"green":   32,
	"yellow":  33,
	"blue":    34,
	"magenta": 35,
	"cyan":    36,
	"white":   37,

	// Background colors
	"bg_black":   40,
	"bg_red":     41,
	"bg_green":   42,
	"bg_yellow":  43,
	"bg_blue":    44,
	"bg_magenta": 45,
	"bg_cyan":    46,
	"bg_white":   47,
}

// Has reports whether code is present in the table.
func (t Table) Has(code string) bool {
	_, ok := t[code]
	return ok
}

// Colorize emits one SGR sequence per code, in order, then text and Reset.
// Unknown codes are skipped; callers validate with Has first.
func (t Table) Colorize(codes []string, text string) string {
	var b strings.Builder
	for _, code := range codes {
		param, ok := t[code]
		if !ok {
			continue
		}
		b.WriteString(termenv.CSI)
		b.WriteString(strconv.Itoa(param))
		b.WriteByte('m')
	}
	b.WriteString(text)
	b.WriteString(Reset)
	return b.String()
}

// Names returns the table's code names in sorted order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
