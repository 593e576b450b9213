package style

import (
	"github.com/arthur-debert/stylize/pkg/config"
	"github.com/hashicorp/go-multierror"
)

// Names returns the configured color names in sorted order.
func (r *Resolver) Names() []string {
	return r.store.MapKeys(config.KeyColors)
}

// Validate resolves each named color, or every configured color when no
// names are given, and reports all failures together.
func (r *Resolver) Validate(names ...string) error {
	if len(names) == 0 {
		names = r.Names()
	}

	var result *multierror.Error
	for _, name := range names {
		if _, _, err := r.Resolve(name); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
