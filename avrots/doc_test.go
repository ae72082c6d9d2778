// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package avrots

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDoc_Empty(t *testing.T) {
	assert.Equal(t, "", formatDoc("", 80, ""))
}

func TestFormatDoc_SingleLine(t *testing.T) {
	want := "\t/**\n\t * hello world\n\t */\n"
	assert.Equal(t, want, formatDoc("hello world", 80, "\t"))
}

func TestFormatDoc_Wraps(t *testing.T) {
	doc := strings.Repeat("word ", 20) // 20 words, 99 characters
	out := formatDoc(doc, 25, "\t")

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Greater(t, len(lines), 3)
	assert.Equal(t, "\t/**", lines[0])
	assert.Equal(t, "\t */", lines[len(lines)-1])
	for _, line := range lines[1 : len(lines)-1] {
		body, found := strings.CutPrefix(line, "\t * ")
		require.True(t, found)
		assert.LessOrEqual(t, len(body), 25)
		assert.NotEmpty(t, body)
	}
}

func TestWrapWords(t *testing.T) {
	assert.Equal(t, []string{"aaa bbb", "ccc"}, wrapWords("aaa bbb ccc", 7))
	assert.Equal(t, []string{"aaa", "bbb", "ccc"}, wrapWords("aaa bbb ccc", 3))
	// A word longer than the budget is never split.
	assert.Equal(t, []string{"aaa", "longerthanbudget", "b"}, wrapWords("aaa longerthanbudget b", 5))
	assert.Nil(t, wrapWords("   ", 10))
}
