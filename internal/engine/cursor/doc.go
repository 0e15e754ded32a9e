// Package cursor provides cursor motions and the visual selection model.
//
// Selection Model:
//
// A Selection has an anchor, where it started, and an active end, which
// follows the cursor. Both ends are inclusive. The ends are never stored
// sorted; NormalizedRange orders them when the selection is used, so
// selecting backwards and forwards behave the same.
//
// Motions:
//
// Motions take a buffer and a position and return a new position that is
// always valid for that buffer.
package cursor
