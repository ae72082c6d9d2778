// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package avrots

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModule_Render(t *testing.T) {
	mod := NewModule("user.avsc")
	mod.Defs.Set("A", "export type A = string")
	mod.Defs.Set("B", "export type B = number")

	want := "/* user.avsc */\n\nexport type A = string\n\nexport type B = number\n"
	assert.Equal(t, want, string(mod.Render()))
}

func TestModule_RenderWithoutSource(t *testing.T) {
	mod := NewModule("")
	mod.Defs.Set("A", "export type A = string")
	assert.Equal(t, "export type A = string\n", string(mod.Render()))
}

func TestPackage_Render(t *testing.T) {
	pkg := Package{}
	for _, name := range []string{"User", "Color"} {
		mod := NewModule(strings.ToLower(name) + ".avsc")
		mod.Defs.Set(name, "export type "+name+" = string")
		pkg[name] = mod
	}

	var mu sync.Mutex
	files := make(map[string]string)
	err := pkg.Render(PackageRenderOptions{
		Formatter: func(b []byte) ([]byte, error) {
			return append(b, '\n'), nil
		},
		Write: func(modName string, data []byte) error {
			mu.Lock()
			defer mu.Unlock()
			files[modName] = string(data)
			return nil
		},
	})
	require.NoError(t, err)

	require.Len(t, files, 2)
	assert.Contains(t, files["User"], "export type User = string")
	assert.True(t, strings.HasSuffix(files["User"], "\n\n"))
	assert.Contains(t, files["Color"], "export type Color = string")
}
