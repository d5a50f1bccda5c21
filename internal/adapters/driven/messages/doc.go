// Package messages provides the message sets shown by the interactive
// session. The sets are written in TOML and embedded in the binary, so
// selecting a mode never touches the filesystem.
package messages
