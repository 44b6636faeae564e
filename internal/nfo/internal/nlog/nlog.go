// Package nlog is the debug logger used across the nfo load pipeline.
package nlog

import "log"

// DebugEnabled gates Debug output. Off by default; exercisers flip it
// on via configuration.
var DebugEnabled bool

// Debug logs a formatted debug line when DebugEnabled is true.
func Debug(format string, args ...any) {
	if DebugEnabled {
		log.Printf("DEBUG: "+format, args...)
	}
}
