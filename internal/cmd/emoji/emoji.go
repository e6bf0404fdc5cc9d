// Package emoji provides symbol constants for CLI output.
package emoji

// Symbol constants give commands a consistent visual language.
const (
	// Success marks a completed operation.
	Success = "✓"

	// Warning marks a non-fatal issue, such as a skipped catalog.
	Warning = "!"

	// Info marks general information, such as a written file.
	Info = "i"
)
