package localize

import (
	"fmt"
	"strings"
)

// M holds named parameters for placeholder interpolation.
type M map[string]any

// Interpolate replaces every literal occurrence of {name} in the template
// with the stringified value bound to name. Replacement runs once per
// parameter over the running result, so text inserted by an earlier parameter
// is visible to later scans; this is a documented quirk of the format, not a
// bug. A placeholder without a matching parameter stays untouched, and a
// parameter without a matching placeholder is a no-op.
//
// Example:
//
//	template: "Hello, {name}! You have {count} messages."
//	params: M{"name": "John", "count": 5}
//	returns: "Hello, John! You have 5 messages."
func Interpolate(template string, params M) string {
	if len(params) < 1 {
		return template
	}

	result := template
	for name, value := range params {
		result = strings.ReplaceAll(result, "{"+name+"}", fmt.Sprintf("%v", value))
	}

	return result
}
