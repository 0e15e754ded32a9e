// Package mode provides the modal editing state machine for meow.
//
// The editor is always in exactly one of five modes:
//   - Normal mode: Navigation and commands
//   - Insert mode: Text input
//   - Visual mode: Character-wise selection
//   - Command mode: Ex-style command line (":w", ":q")
//   - Search mode: Incremental query entry ("/" and "?")
//
// # Dispatch
//
// Keys are resolved through a static table keyed by (mode kind, key, rune).
// Keys with no entry fall back to a per-mode default: printable runes are
// inserted in Insert mode and appended to the pending input in Command and
// Search mode; everything else is ignored. The table is plain data,
// available through Bindings, so it can be inspected and tested directly.
//
// # Transitions
//
//	Normal ── i a o ──▶ Insert   ── Esc ──────────▶ Normal
//	Normal ── v ──────▶ Visual   ── y d x Esc ────▶ Normal
//	Normal ── : ──────▶ Command  ── Enter Esc ────▶ Normal
//	Normal ── / ? ────▶ Search   ── Enter Esc ────▶ Normal
//
// Every mode returns to Normal on Escape. An action that changes the mode
// reports its destination through Action.Target.
package mode
