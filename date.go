package gongwen

import (
	"strings"
	"time"
)

// autoDateLayout is the 成文日期 form used when resolving "auto".
const autoDateLayout = "2006年1月2日"

// ResolveDate handles the "auto" date value.
//   - "auto" (case-insensitive) → t formatted as 2006年1月2日
//   - any other value → returned unchanged (passthrough)
//
// The time parameter allows injecting a fixed time for testing.
func ResolveDate(value string, t time.Time) string {
	if strings.EqualFold(strings.TrimSpace(value), "auto") {
		return t.Format(autoDateLayout)
	}
	return value
}
