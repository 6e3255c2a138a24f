// Package session drives the interactive review of tag proposals.
//
// A Session shows the proposed tags next to the ones the file already
// carries and asks for a decision. The user can accept, reject, accept
// everything that follows, or drop into a small line editor to adjust
// individual tags before deciding. Select and CollectEdits are the
// reusable input primitives behind the prompts.
package session
