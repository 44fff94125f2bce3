// Package diagnostic collects what happened to each change event during a
// replay: events that produced no command, commands that failed to execute,
// and the field names the user probably meant.
package diagnostic
