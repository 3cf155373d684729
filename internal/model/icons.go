package model

// Centralized icons for the UI components
// Using simple single-width characters for consistent terminal rendering
const (
	IconTop      = "¹" // Most frequent entry
	IconBottom   = "¶" // Least frequent entry
	IconExcluded = "✗" // Hidden from the stdout report (node_modules)
	IconOK       = " " // Space (no icon to reduce noise)
)
