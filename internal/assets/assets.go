// Package assets holds images compiled into the binary.
package assets

import _ "embed"

// Background is the default PNG a card is placed on.
//
//go:embed behold.png
var Background []byte
