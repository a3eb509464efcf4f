// Package stockroom holds build metadata for the stockroom module.
package stockroom

// Version is the released version of the stockroom CLI.
const Version = "0.1.0"
