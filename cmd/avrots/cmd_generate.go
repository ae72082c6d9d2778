// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	jsonc "github.com/DisposaBoy/JsonConfigReader"
	"github.com/antoniszymanski/avrots-go/avrots"
	"github.com/antoniszymanski/avrots-go/cmd/avrots/config"
	"github.com/antoniszymanski/sanefmt-go"
)

type cmdGenerate struct {
	Path string `arg:"" type:"path" default:"avrots.jsonc"`
}

func (c *cmdGenerate) Run() error {
	var f *os.File
	var err error
	if c.Path != "-" {
		f, err = os.Open(c.Path)
		if err != nil {
			return err
		}
		defer f.Close() //nolint:errcheck
	} else {
		f = os.Stdin
	}

	data, err := io.ReadAll(jsonc.New(f))
	if err != nil {
		return err
	}

	var cfg config.Config
	if err = json.Unmarshal(data, &cfg); err != nil {
		return err
	}

	var formatter avrots.Formatter
	if cfg.Format {
		formatter = func(b []byte) ([]byte, error) {
			return sanefmt.Format(bytes.NewReader(b))
		}
	}

	pkg := avrots.Package{}
	for _, path := range cfg.Schemas {
		name, mod, err := c.translate(path, &cfg)
		if err != nil {
			return err
		}
		if mod != nil {
			pkg[name] = mod
		}
	}

	if err = os.MkdirAll(cfg.OutputPath, 0750); err != nil {
		return err
	}
	return pkg.Render(avrots.PackageRenderOptions{
		Formatter: formatter,
		Write: func(modName string, data []byte) error {
			return os.WriteFile(
				filepath.Join(cfg.OutputPath, modName+".ts"), data, 0600,
			)
		},
	})
}

// translate converts one schema file into a module, or nil if the schema's
// root name is filtered out by cfg.Names.
func (c *cmdGenerate) translate(path string, cfg *config.Config) (string, *avrots.Module, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil, err
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(jsonc.New(f))
	if err != nil {
		return "", nil, err
	}

	schema, err := avrots.ParseSchema(data)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", path, err)
	}

	name := avrots.RootName(schema)
	if name == "" {
		return "", nil, fmt.Errorf("%s: top-level schema must be a record or an enum", path)
	}
	if cfg.Names != nil && cfg.Names.Size() > 0 && !cfg.Names.Contains(name) {
		return "", nil, nil
	}

	t := avrots.NewTranslator(
		avrots.DocWidth(cfg.DocWidth),
		avrots.TypeMappings(cfg.TypeMappings),
	)
	if err = t.Translate(schema); err != nil {
		return "", nil, fmt.Errorf("%s: %w", path, err)
	}
	for _, diag := range t.Diagnostics() {
		fmt.Fprintf(os.Stderr, "%s: warning: %s\n", path, diag)
	}

	mod := t.Module()
	mod.Source = path
	return name, mod, nil
}
