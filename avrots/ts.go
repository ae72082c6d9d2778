// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package avrots

import (
	"github.com/elliotchance/orderedmap/v3"
	"golang.org/x/sync/errgroup"
)

type Package map[string]*Module // Keyed by module name

type Module struct {
	Source string                                 // schema file the module was generated from
	Defs   *orderedmap.OrderedMap[string, string] // Keyed by generated identifier
}

func NewModule(source string) *Module {
	return &Module{
		Source: source,
		Defs:   orderedmap.NewOrderedMap[string, string](),
	}
}

func (m *Module) Render() []byte {
	var b []byte
	if m.Source != "" {
		b = append(b, "/* "...)
		b = append(b, m.Source...)
		b = append(b, " */"...)
	}
	for def := range m.Defs.Values() {
		if len(b) > 0 {
			b = append(b, "\n\n"...)
		}
		b = append(b, def...)
	}
	b = append(b, '\n')
	return b
}

type Formatter func([]byte) ([]byte, error)

type PackageRenderOptions struct {
	Limit     int
	Formatter Formatter
	Write     func(modName string, data []byte) error
}

func (p Package) Render(opts PackageRenderOptions) error {
	var g errgroup.Group
	if opts.Limit != 0 {
		g.SetLimit(opts.Limit)
	}
	for modName, mod := range p {
		g.Go(func() error {
			data := mod.Render()
			if opts.Formatter != nil {
				var err error
				data, err = opts.Formatter(data)
				if err != nil {
					return err
				}
			}
			return opts.Write(modName, data)
		})
	}
	return g.Wait()
}
