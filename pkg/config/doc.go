// Package config loads the beets configuration the styling functions read.
//
// Sources are layered with koanf in this order, later sources overriding
// earlier ones:
//
//  1. embedded defaults (embedded/defaults.yaml)
//  2. the user's config file: an explicit path, else $BEETSDIR/config.yaml,
//     else the first beets/config.yaml found in the XDG config directories
//
// Only two keys matter to this module: ui.color and ui.colors.<name>.
package config
