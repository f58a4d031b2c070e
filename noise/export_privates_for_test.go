// SPDX-License-Identifier: MIT

// Test-bridge: expose the unexported coordinate formatter to noise_test
// without widening the production API. Compiled only for tests.

package noise

// FormatCoords is a test-only alias for formatCoords.
var FormatCoords = formatCoords
