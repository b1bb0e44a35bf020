// Package ui provides the terminal styling shared by mgpustat's output.
//
// Colors are ANSI codes so the dashboard follows the terminal theme:
//
//	ColorInfo    (cyan)    - first table column
//	ColorAccent  (magenta) - values
//	ColorSuccess (green)   - process names
//	ColorMuted   (gray)    - borders and footer text
//
// RenderTable draws a titled table with rounded borders using Lip Gloss.
// NewSpinner returns the Bubble Tea spinner shown while the first sample
// is being taken.
package ui
