// Package core defines the shared language of the stylecheck system.
//
// This package contains:
//   - Severity, the ordered importance of a violation
//   - RuleDescription and RuleInfo, the documentation DTOs of a rule
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
