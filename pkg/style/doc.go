// Package style implements the template functions that colorize path
// formats, pick text depending on color support, emit terminal hyperlinks
// and URL-encode values.
//
// A Resolver decides once, at construction, whether styled output is
// enabled. When it is, symbolic color names are looked up under
// ui.colors.<name>, validated against an ansi.Universe and memoized until
// Clear is called:
//
//	cfg, _ := config.Load("")
//	r, err := style.New(style.Options{Store: cfg})
//	funcs := template.FuncMap{}
//	r.Register(funcs)
//	tmpl := template.Must(template.New("path").Funcs(funcs).Parse(`{{color "text_success" .title}}`))
//
// Undefined colors fall back to the plain text. A color is undefined when
// it has no entry, when its entry is null, or when its name contains a ".",
// since names are single keys under ui.colors. A color that references an
// unknown code, or an invalid BEETS_COLOR value, is a configuration error
// and is returned to the caller; text/template aborts execution with it.
package style
