// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Output Formatting - these keys govern how converted colors are rendered.
const (
	FormatDefault = "format.default"
)

// Swatch Rendering - these keys control the terminal color preview blocks.
const (
	SwatchEnabled = "swatch.enabled"
	SwatchWidth   = "swatch.width"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern general CLI behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
