// Package assets holds files compiled into the binary.
package assets

import _ "embed"

// Words is the built-in purification term catalog.
//
//go:embed data/words.json
var Words []byte
