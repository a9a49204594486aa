// Package tui renders an accordion in the terminal with bubbletea.
//
// The terminal is the host: its width in columns feeds the breakpoints, a
// body's wrapped line count is its natural height, and tea.Tick drives the
// transition frames. Keys: up/down select, enter toggles, a opens all,
// c closes all, m toggles reduced motion.
package tui
