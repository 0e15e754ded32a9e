// Package key provides key event types for the input system.
//
// This package defines the types the terminal backend produces and the mode
// table is keyed on:
//
//   - Key: Identifies a keyboard key (special keys or runes)
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift)
//   - Event: A single key press with modifiers
//
// # Key Specifications
//
// Keys can be written in Vim notation: "a", "<Esc>", "<CR>", "<BS>",
// "<C-s>". ParseSequence reads a whole keystroke script such as
// "ix<Esc>:wq<CR>", which is how tests drive the editor.
package key
