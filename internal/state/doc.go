// Package state ties the pet collection and the like counter together into
// the single session the UI drives.
//
// Every intent (add, remove, increase, decrease) runs one model mutation
// followed by at most one write to the key-value store. A failed write leaves
// the model on its previous snapshot; the error is recorded on the session so
// the status line can show it until the next successful write.
//
// Session is not safe for concurrent use. Bubble Tea calls Update from one
// goroutine, which is the only caller.
package state
