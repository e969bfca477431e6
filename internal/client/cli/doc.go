// Package cli provides the interactive OliLab command-line client.
//
// It drives the session and settings managers of one provider scope: the
// user collection is loaded on start (which settles the boot phase and may
// restore a previous session), refreshed in the background, and the REPL
// exposes login/logout and the branding settings.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See runREPL for the command list.
package cli
