// Package planner decides what zap will do to a single path before any
// I/O happens.
//
// Build maps a flag configuration plus a one-shot existence/metadata
// snapshot to an Action: one file operation and an ordered list of time
// operations. The function is pure and deterministic, so every arm of the
// decision table is independently testable and an Action can be inspected
// or serialized without side effects.
//
// Precedence, first match wins:
//  1. Absent file with creation suppressed: skip, touch nothing.
//  2. Absent file with a template: create from the template.
//  3. Absent file: create empty.
//  4. Present file with a template: overwrite (after confirmation).
//  5. Present file: leave content alone, times only.
package planner
