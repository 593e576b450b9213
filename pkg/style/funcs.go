package style

import "text/template"

// FuncMap returns the template functions under their current and
// historical names.
func (r *Resolver) FuncMap() template.FuncMap {
	funcs := template.FuncMap{}
	r.Register(funcs)
	return funcs
}

// Register adds the template functions to a host's function map,
// replacing any existing entries with the same names.
func (r *Resolver) Register(funcs template.FuncMap) {
	for _, name := range []string{"style", "stylize", "color"} {
		funcs[name] = r.Style
	}
	for _, name := range []string{"pick_by_color", "nocolor"} {
		funcs[name] = r.PickByColor
	}
	for _, name := range []string{"hyperlink", "link"} {
		funcs[name] = r.Hyperlink
	}
	for _, name := range []string{"url_encode", "urlencode"} {
		funcs[name] = URLEncode
	}
}
