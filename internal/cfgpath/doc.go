// Package cfgpath locates the torc configuration file.
//
// It resolves the default location under ~/.config/torc, expands tilde
// shortcuts in user-supplied paths, and writes the embedded sample file for
// `torc config init`. Reading and interpreting the file is the job of
// internal/config; this package only decides where the file lives.
package cfgpath
