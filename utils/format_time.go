// SPDX-License-Identifier: EPL-2.0

package utils

import "strconv"

// FormatSeconds renders a time in seconds with millisecond precision,
// e.g. 2 -> "2.000".
func FormatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', 3, 64)
}
