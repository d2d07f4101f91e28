package batch

import (
	"sync"

	"github.com/ajroetker/go-highway/hwy"
)

// hasVector reports whether hwy dispatched to a hardware SIMD target:
// SSE2, AVX2 or AVX-512 on amd64, NEON or SME on arm64. Setting
// HWY_NO_SIMD forces the scalar path.
var hasVector = sync.OnceValue(hwy.HasSIMD)
