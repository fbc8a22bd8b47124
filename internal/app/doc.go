// Package app wires application dependencies for the CLI.
//
// LoadConfig merges defaults, a local .env file, VIGENERE_* environment
// variables and any flags bound by the caller into a Config. NewWire then
// builds the logger, key store and services from it, exposing them via the
// Wire struct for commands to use.
package app
