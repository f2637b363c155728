//go:build arm64 && !purego

package q15

import (
	_ "github.com/cwbudde/algo-q15/internal/arch/arm64/neon" // register NEON backend
)
