// Package logging provides structured logging for the decode service
// and CLI.
//
// It wraps zap with a process-global logger that defaults to silent: a
// one-shot `inode-decode <hex>` invocation should print only its result.
// The serve command initializes an explicit level; everything else can
// opt in through the INODE_LOG_LEVEL environment variable.
//
// All functions are safe for concurrent use.
package logging
