// Package cli is the interactive press kit command-line client.
//
// It restores the saved session, then reads commands from stdin:
//
//	register, login, logout, whoami, verify, confirm <token>,
//	forgot, reset <token>, kits, create [title], show <id>,
//	publish <id>, unpublish <id>, delete <id>, logo <id> <file>,
//	view <slug>, help, exit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
