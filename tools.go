//go:build tools

package tools

import (
	// Install with `make tools`
	_ "golang.org/x/tools/cmd/cover"
)
