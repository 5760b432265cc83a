// Package scripts embeds the Risor shape scripts shipped with solid.
package scripts

import "embed"

// FS holds shapes/*.risor, one script per shape kind, and the shared
// modules at its root that those scripts import.
//
//go:embed *.risor shapes/*.risor
var FS embed.FS
