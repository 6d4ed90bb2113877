// Package catalog registers every required protocol version (spec C8) into
// the internal/protocol registry. Versions 0-4 are direct transcriptions of
// original_source/fastmc/proto.py's DSL; versions 5 and 47 are documented
// minimal extrapolations (see registerV5, registerV47) since the retrieved
// original source does not cover them.
package catalog

import (
	"fmt"
	"sync"
)

var (
	loadOnce sync.Once
	loadErr  error
)

// Load registers protocol versions 0, 1, 2, 3, 4, 5, 47 into the
// internal/protocol registry. Idempotent: subsequent calls return the
// result of the first call without re-registering.
func Load() error {
	loadOnce.Do(func() {
		if err := registerV0(); err != nil {
			loadErr = fmt.Errorf("catalog: registering version 0: %w", err)
			return
		}
		if err := registerV1to3(); err != nil {
			loadErr = fmt.Errorf("catalog: registering versions 1-3: %w", err)
			return
		}
		if err := registerV4(); err != nil {
			loadErr = fmt.Errorf("catalog: registering version 4: %w", err)
			return
		}
		if err := registerV5(); err != nil {
			loadErr = fmt.Errorf("catalog: registering version 5: %w", err)
			return
		}
		if err := registerV47(); err != nil {
			loadErr = fmt.Errorf("catalog: registering version 47: %w", err)
			return
		}
	})
	return loadErr
}
