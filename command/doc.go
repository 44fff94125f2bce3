// Package command provides reversible edits of scene nodes and the stack
// that executes, undoes and redoes them.
//
// A Command addresses its node by handle and field path, never by pointer:
// it outlives the change event it was built from and must keep working after
// other commands have run. Execute captures the value it overwrites and
// Revert puts it back. Both are no-ops when called out of turn, so a stack
// that alternates them strictly can never corrupt a field.
package command
