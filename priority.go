// Package priority defines an abstract set of priorities for tasks or threads,
// for example a "background" priority or a "user interactive" priority.
//
// The package does not schedule anything. It only defines a type that
// unrelated parts of a program use to agree on how urgent a piece of work is.
//
// Priorities are ordered by urgency, so the usual comparison operators work:
//
//	if p >= priority.Utility {
//		// at least as urgent as Utility
//	}
//
// The set of priorities is closed for this major version. Adding a value is a
// breaking change, but switches over Priority should still keep a default arm.
package priority

import (
	"cmp"
	"fmt"
)

// Priority is an abstract urgency level. Larger values are more urgent.
//
// The zero value is Unknown.
type Priority uint8

const (
	// Unknown means the priority could not be determined.
	//
	// Avoid producing this value. It exists for cases where the priority cannot
	// reasonably be known, and it is never treated as Background.
	Unknown Priority = iota

	// Background is for work that is not time-sensitive and can run in the
	// background: not visible to the user and not waiting on user input.
	Background

	// Utility is medium priority. Use it for work the user may switch away from
	// before it completes (on the order of 10+ seconds), such as work shown
	// with a progress bar.
	Utility

	// UserInitiated is high priority. Use it for work that responds to user
	// input and should complete before the user switches focus (on the order
	// of a second). The user is likely waiting on it.
	UserInitiated

	// UserInteractive is UI priority. The work is expected to paint the screen
	// or respond to input as soon as possible.
	//
	// In systems with a single-threaded UI the work runs on the UI thread and
	// may block it.
	UserInteractive
)

// HighestAsync returns the highest priority suitable for general, blocking,
// async work. It currently returns UserInitiated.
//
// UserInteractive is reserved for input and paint paths that must not compete
// with generic async work.
func HighestAsync() Priority {
	return UserInitiated
}

// UnitTest returns a priority suitable for unit tests.
func UnitTest() Priority {
	return UserInitiated
}

// All returns every priority, most urgent first.
func All() []Priority {
	return []Priority{UserInteractive, UserInitiated, Utility, Background, Unknown}
}

// Compare returns -1 if a is less urgent than b, 0 if they are equal and +1 if
// a is more urgent. It can be passed to slices.SortFunc.
func Compare(a, b Priority) int {
	return cmp.Compare(a, b)
}

// AtLeast reports whether p is at least as urgent as q.
func (p Priority) AtLeast(q Priority) bool {
	return p >= q
}

// IsValid checks if the priority is one of the named values
func (p Priority) IsValid() bool {
	switch p {
	case UserInteractive, UserInitiated, Utility, Background, Unknown:
		return true
	}
	return false
}

// String returns a human-readable name for logs and diagnostics.
// It is not a stable wire format.
func (p Priority) String() string {
	switch p {
	case UserInteractive:
		return "UserInteractive"
	case UserInitiated:
		return "UserInitiated"
	case Utility:
		return "Utility"
	case Background:
		return "Background"
	case Unknown:
		return "Unknown"
	default:
		return fmt.Sprintf("Priority(%d)", uint8(p))
	}
}
