// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package avrots

import "strings"

// formatDoc renders a doc string as an indented block comment, word-wrapped
// to width columns (not counting the indent). Empty docs render as nothing.
func formatDoc(doc string, width int, indent string) string {
	if doc == "" {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(indent)
	sb.WriteString("/**\n")
	for _, line := range wrapWords(doc, width) {
		sb.WriteString(indent)
		sb.WriteString(" * ")
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	sb.WriteString(indent)
	sb.WriteString(" */\n")
	return sb.String()
}

// wrapWords breaks s on whitespace into lines of at most width columns.
// A single word longer than width gets a line of its own.
func wrapWords(s string, width int) []string {
	var lines []string
	var line string
	for _, word := range strings.Fields(s) {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
