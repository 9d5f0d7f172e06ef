// Package cmd provides the conv and fmt subcommands for converting and
// formatting deft language files.
package cmd
