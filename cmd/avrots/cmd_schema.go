// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"os"
	"path/filepath"

	"github.com/antoniszymanski/avrots-go/cmd/avrots/config"
)

type cmdSchema struct {
	Path string `arg:"" type:"path" default:"avrots.schema.json"`
}

func (c *cmdSchema) Run() error {
	if c.Path == "-" {
		_, err := os.Stdout.WriteString(config.Schema())
		return err
	}

	if err := os.MkdirAll(filepath.Dir(c.Path), 0750); err != nil {
		return err
	}
	return os.WriteFile(c.Path, []byte(config.Schema()), 0600)
}
