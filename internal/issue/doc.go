// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// Errors built here carry the failed operation, the resource involved, and
// remediation suggestions, so CLI commands can render something more useful
// than a bare error string.
package issue
