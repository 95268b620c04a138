// Package server holds the HTTP command server configuration.
//
// The cmd package starts the server; this package only defines its settings:
// listen host and port, the optional API key and the route prefix under which
// the shell commands are mounted.
package server
