// SPDX-License-Identifier: MIT

package lagcorr

// Test-only hooks into unexported helpers.
var (
	CheckBounds = checkBounds
	ClampUnit   = clampUnit
)
