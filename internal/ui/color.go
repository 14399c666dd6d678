// Package ui holds the colour and table helpers used for command output
package ui

import (
	"github.com/pterm/pterm"

	"github.com/personaplus/plus/internal/objective"
)

var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

func Cyan(a any) string {
	if DarkTheme {
		return pterm.LightCyan(a)
	}

	return pterm.Cyan(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Gray(a any) string {
	return pterm.Gray(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// Status colours the status of an objective.
func Status(s objective.Status) string {
	switch s {
	case objective.Done:
		return Green(s.String())
	case objective.Pending:
		return Yellow(s.String())
	default:
		return Gray(s.String())
	}
}
