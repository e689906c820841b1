package core

// error_messages.go defines user-friendly messages, with codes for support reference,
// for the errors a validation run or the HTTP surface can return. Data
// problems inside a snapshot are not errors in this sense: they are written
// to the detail and summary logs.
//
// Error codes are grouped by category:
//
// # Snapshot Errors (SNAP001-SNAP099)
//
//	SNAP001 - Invalid snapshot id: The id is empty or contains a path separator
//	          Action: Use the snapshot directory name only
//	          Patterns: "invalid snapshot id"
//
//	SNAP002 - Snapshot not found: No directory with this id exists
//	          Action: Check the snapshot id and the snapshot base directory
//	          Patterns: "snapshot not found"
//
//	SNAP003 - Unknown entity: The entity name is not one of the twelve entities
//	          Action: Use one of the names listed by /api/entities
//	          Patterns: "unknown entity"
//
// # Run Errors (RUN001-RUN099)
//
//	RUN001 - System busy: Too many validation runs in progress
//	         Action: Please wait a moment and try again
//	         Patterns: "too many concurrent validation runs"
//
//	RUN002 - Run cancelled: The request was cancelled before the run finished
//	         Action: Start the run again
//	         Patterns: "context canceled"
//
//	RUN003 - Run timed out
//	         Action: Try again later
//	         Patterns: "context deadline exceeded"
//
//	RUN004 - No summary yet: The snapshot has not been validated
//	         Action: Run a validation first
//	         Patterns: "open summary log"
//
//	RUN005 - Summary incomplete: The latest run is still going or did not finish
//	         Action: Wait for the run, or start it again
//	         Patterns: "summary log incomplete"
//
//	RUN006 - Run in progress: The snapshot is being validated already
//	         Action: Wait for that run to finish
//	         Patterns: "validation already running"
//
// # Output Errors (SINK001-SINK099)
//
//	SINK001 - Cannot create logs: The error logs could not be created
//	          Action: Check that the output directory exists and is writable
//	          Patterns: "open error sink", "create output directory"
//
//	SINK002 - Cannot write logs: Writing the error logs failed part way
//	          Action: Check free disk space and run again
//	          Patterns: "write detail", "write summary", "flush detail"
//
// # Vocabulary Errors (VOC001-VOC099)
//
//	VOC001 - Vocabulary missing: A controlled vocabulary list could not be loaded
//	         Action: Check AVS_DIR contains all six vocabulary files
//	         Patterns: "open vocabulary", "vocabulary domain not loaded"
//
// # Default Error (ERR000)
//
//	ERR000 - Unknown error: An unexpected error occurred
//	         Action: Please try again or contact support
//
// # Pattern Matching
//
// Error patterns are matched case-insensitively using strings.Contains.
// The first matching pattern wins, so more specific patterns should be
// defined before general ones.

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

var (
	msgCannotCreateLogs = UserMessage{
		Message: "The error logs could not be created",
		Action:  "Check that the output directory exists and is writable",
		Code:    "SINK001",
	}
	msgCannotWriteLogs = UserMessage{
		Message: "Writing the error logs failed",
		Action:  "Check free disk space and run again",
		Code:    "SINK002",
	}
	msgVocabularyMissing = UserMessage{
		Message: "A controlled vocabulary list could not be loaded",
		Action:  "Check AVS_DIR contains all six vocabulary files",
		Code:    "VOC001",
	}
)

// errorPatterns maps technical error patterns (case-insensitive) to user messages.
// Order matters: more specific patterns come first.
//
// To add a new error pattern:
//  1. Choose the appropriate category and code range
//  2. Add the pattern in the correct position (specific before general)
//  3. Update the reference at the top of this file
var errorPatterns = []errorPattern{
	// =========================================================================
	// Snapshot Errors (SNAP001-SNAP003)
	// =========================================================================
	{
		pattern: "invalid snapshot id",
		msg: UserMessage{
			Message: "The snapshot id is not valid",
			Action:  "Use the snapshot directory name only",
			Code:    "SNAP001",
		},
	},
	{
		pattern: "snapshot not found",
		msg: UserMessage{
			Message: "Snapshot not found",
			Action:  "Check the snapshot id and the snapshot base directory",
			Code:    "SNAP002",
		},
	},
	{
		pattern: "unknown entity",
		msg: UserMessage{
			Message: "Unknown entity",
			Action:  "Use one of the names listed by /api/entities",
			Code:    "SNAP003",
		},
	},

	// =========================================================================
	// Output Errors (SINK001-SINK002)
	// Checked before run errors: a sink failure wraps the run context error.
	// =========================================================================
	{pattern: "open error sink", msg: msgCannotCreateLogs},
	{pattern: "create output directory", msg: msgCannotCreateLogs},
	{pattern: "write detail", msg: msgCannotWriteLogs},
	{pattern: "write summary", msg: msgCannotWriteLogs},
	{pattern: "flush detail", msg: msgCannotWriteLogs},

	// =========================================================================
	// Run Errors (RUN001-RUN006)
	// =========================================================================
	{
		pattern: "too many concurrent validation runs",
		msg: UserMessage{
			Message: "System is busy with other validation runs",
			Action:  "Please wait a moment and try again",
			Code:    "RUN001",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "The run was cancelled",
			Action:  "Start the run again",
			Code:    "RUN002",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "The run timed out",
			Action:  "Try again later",
			Code:    "RUN003",
		},
	},
	{
		pattern: "open summary log",
		msg: UserMessage{
			Message: "No summary is available for this snapshot",
			Action:  "Run a validation first",
			Code:    "RUN004",
		},
	},
	{
		pattern: "summary log incomplete",
		msg: UserMessage{
			Message: "The latest run of this snapshot has not finished",
			Action:  "Wait for the run, or start it again",
			Code:    "RUN005",
		},
	},
	{
		pattern: "validation already running",
		msg: UserMessage{
			Message: "This snapshot is being validated already",
			Action:  "Wait for that run to finish",
			Code:    "RUN006",
		},
	},

	// =========================================================================
	// Vocabulary Errors (VOC001)
	// =========================================================================
	{pattern: "open vocabulary", msg: msgVocabularyMissing},
	{pattern: "vocabulary domain not loaded", msg: msgVocabularyMissing},
}

// defaultMessage is returned when no pattern matches (ERR000).
// Support staff should check application logs for the original technical
// error when users report ERR000.
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// It returns the first pattern match, or the ERR000 fallback.
//
// Example:
//
//	msg := MapError(fmt.Errorf("%w: %q", ErrInvalidSnapshotID, "../x"))
//	// msg.Code == "SNAP001"
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err matches a known pattern, as opposed to
// the generic ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}

// UserError wraps a technical error with a user-friendly message.
// The original error is preserved for logging.
type UserError struct {
	Technical error       // Original technical error for logging
	User      UserMessage // User-friendly message for display
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// NewUserError maps err to a UserError. Returns nil if err is nil.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{
		Technical: err,
		User:      MapError(err),
	}
}
