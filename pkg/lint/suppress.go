package lint

import (
	"strings"

	"github.com/leapstack-labs/stylecheck/pkg/source"
)

// SuppressionMarker starts a per-line opt-out comment, e.g.
// "x as! Int // $-force_cast".
const SuppressionMarker = "// $-"

// LineSuppressed reports whether the line containing offset carries a
// per-line opt-out for ruleID. Rules call it from Validate; it is
// independent of the directive timeline.
func LineSuppressed(file *source.File, offset int, ruleID string) bool {
	line := file.LineAt(offset).Content
	for {
		i := strings.Index(line, SuppressionMarker)
		if i < 0 {
			return false
		}
		line = line[i+len(SuppressionMarker):]
		if id, _ := ParseRuleID(line); id == ruleID {
			return true
		}
	}
}
