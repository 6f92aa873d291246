// Package recon reconciles the sales-compensation roster against the
// personnel roster and produces the LOA return update table.
//
// This package is the heart of the pipeline, containing all domain logic
// independent of any UI or transport layer. It can be used by web handlers,
// CLI tools, or tests without modification.
//
// # Pipeline
//
// A run moves through fixed stages:
//
//  1. Read the sales report (three banner rows above its header).
//  2. Build the active identifier set: employees whose Active Status
//     normalizes to yes and On Leave normalizes to no, ids coerced to a
//     common integer domain.
//  3. Read the people file (positional column contract, at least 105
//     columns).
//  4. Compute the selection mask: valid id, id in the active set, and
//     status column equal to "LOA".
//  5. Project the masked rows through a named column projection and write
//     the output workbook.
//
// [Run] executes a pipeline synchronously. [Go] runs it on a worker
// goroutine and delivers ordered progress events plus exactly one terminal
// event over a channel, for callers that must stay responsive.
//
// # Column projections
//
// The people file is addressed by fixed column position, a brittle but
// external contract. The position-to-name lists are versioned
// configurations: [ReturnUpdate] (eight columns) and
// [ReturnUpdateWithTermination] (nine columns, adds Termination Date).
// Both remain in use by different front ends.
//
// # Error Handling
//
// Failures are typed (schema mismatch, insufficient columns, protected
// document, unreadable file, missing input) and abort the run at the point
// of detection; no partial output is produced. [MapError] converts any
// pipeline error to a user-facing message with a support code.
package recon
