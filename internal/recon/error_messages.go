// Package recon error code reference.
//
// This file defines user-friendly error messages with codes for support
// reference. When operators hit an error they can quote the code for
// faster diagnosis.
//
// # File Errors (FILE001-FILE099)
//
//	FILE001 - Protected document: legacy workbook is wrapped by
//	          sensitivity labels or IRM
//	          Action: Open it in Excel and save an unprotected copy
//	          Patterns: "protected document"
//
//	FILE002 - Missing input: a required file was not supplied
//	          Action: Provide both the sales report and the people file
//	          Patterns: "missing input", "no file provided"
//
//	FILE003 - Unreadable file: neither decode path could read the file
//	          Action: Re-export the file as .xlsx and retry
//	          Patterns: "unreadable file"
//
//	FILE004 - File too large: upload exceeds the configured size limit
//	          Action: Export a smaller file
//	          Patterns: "file too large", "request body too large"
//
// # Schema Errors (SCH001-SCH099)
//
//	SCH001 - Missing columns: the sales report lacks required columns
//	         Action: Re-export the sales report with all columns included
//	         Patterns: "missing columns in sales report"
//
//	SCH002 - Insufficient columns: the people file is too narrow for the
//	         positional contract
//	         Action: Export the full people file without hiding columns
//	         Patterns: "need at least"
//
// # Rate Limiting (RATE001-RATE099)
//
//	RATE001 - Rate limited: too many requests
//	          Action: Wait a moment before trying again
//	          Patterns: "rate limit"
//
// # Default Error (ERR000)
//
//	ERR000 - Unknown error: an unexpected error occurred
//	         Action: Check server logs for the original error
//
// Error patterns are matched case-insensitively using strings.Contains.
// The first matching pattern wins, so more specific patterns are defined
// before general ones.
package recon

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

// errorPatterns maps technical error patterns (case-insensitive) to user
// messages. Matched with strings.Contains, first match wins, so specific
// patterns come before general ones.
var errorPatterns = []errorPattern{
	{
		pattern: "protected document",
		msg: UserMessage{
			Message: "The file appears to be protected by sensitivity labels or IRM",
			Action:  "Open it in Excel and save an unprotected copy, then retry",
			Code:    "FILE001",
		},
	},
	{
		pattern: "missing input",
		msg: UserMessage{
			Message: "A required file was not supplied",
			Action:  "Provide both the sales report and the people file",
			Code:    "FILE002",
		},
	},
	{
		pattern: "no file provided",
		msg: UserMessage{
			Message: "A required file was not supplied",
			Action:  "Provide both the sales report and the people file",
			Code:    "FILE002",
		},
	},
	{
		pattern: "unreadable file",
		msg: UserMessage{
			Message: "The file could not be read as a spreadsheet",
			Action:  "Re-export the file as .xlsx and retry",
			Code:    "FILE003",
		},
	},
	{
		pattern: "file too large",
		msg: UserMessage{
			Message: "File exceeds the maximum upload size",
			Action:  "Export a smaller file",
			Code:    "FILE004",
		},
	},
	{
		pattern: "request body too large",
		msg: UserMessage{
			Message: "File exceeds the maximum upload size",
			Action:  "Export a smaller file",
			Code:    "FILE004",
		},
	},
	{
		pattern: "missing columns in sales report",
		msg: UserMessage{
			Message: "The sales report is missing required columns",
			Action:  "Re-export the sales report with all columns included",
			Code:    "SCH001",
		},
	},
	{
		pattern: "need at least",
		msg: UserMessage{
			Message: "The people file does not have enough columns",
			Action:  "Export the full people file without hiding columns",
			Code:    "SCH002",
		},
	},
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000). Support
// staff should check application logs for the original technical error
// when operators report ERR000.
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// It searches through the known patterns (case-insensitive) and returns
// the first match, falling back to ERR000.
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
