// Package commands defines the vigenere CLI and wires dependencies for subcommands.
//
// Commands
//
//   - encrypt      Encrypt text from arguments, a file or stdin
//   - decrypt      Decrypt text from arguments, a file or stdin
//   - key add      Seal a key under a passphrase in the key file
//   - key list     List stored keys by name and fingerprint
//   - key show     Print one stored key's metadata
//   - key rm       Remove a stored key
//
// # Implementation
//
// The root command loads configuration through viper (flags, then
// VIGENERE_* variables, then defaults) and builds the dependency graph
// (key store, services, logger) before any subcommand runs, so handlers can
// share one app.Wire.
package commands
