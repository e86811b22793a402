// Copyright (C) 2025 sage-x-project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

// SPDX-License-Identifier: LGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadBootstrap_NoFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	wd, _ := os.Getwd()
	defer os.Chdir(wd)
	os.Chdir(dir)

	cfg, err := LoadBootstrap("")
	if err != nil {
		t.Fatalf("LoadBootstrap: %v", err)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("expected default level info, got %q", cfg.Logging.Level)
	}
}

func TestLoadBootstrap_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "walletstorage.yaml")
	content := "logging:\n  level: debug\n  format: console\nmetrics:\n  enabled: true\n  address: \":9999\"\npool:\n  writehost: db.internal\n  port: 3307\n  dbname: wallets\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadBootstrap(path)
	if err != nil {
		t.Fatalf("LoadBootstrap: %v", err)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging: %+v", cfg.Logging)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Address != ":9999" {
		t.Fatalf("unexpected metrics: %+v", cfg.Metrics)
	}
	if cfg.Pool.WriteHost != "db.internal" || cfg.Pool.Port != 3307 || cfg.Pool.DBName != "wallets" {
		t.Fatalf("unexpected pool: %+v", cfg.Pool)
	}
}

func TestLoadBootstrap_EnvOverride(t *testing.T) {
	os.Setenv("WALLETSTORAGE_LOGGING_LEVEL", "warn")
	defer os.Unsetenv("WALLETSTORAGE_LOGGING_LEVEL")

	dir := t.TempDir()
	wd, _ := os.Getwd()
	defer os.Chdir(wd)
	os.Chdir(dir)

	cfg, err := LoadBootstrap("")
	if err != nil {
		t.Fatalf("LoadBootstrap: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("expected env override to win, got %q", cfg.Logging.Level)
	}
}

func TestLoadBootstrap_RejectsInvalidLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	os.WriteFile(path, []byte("logging:\n  level: noisy\n"), 0o644)

	if _, err := LoadBootstrap(path); err == nil {
		t.Fatal("expected an invalid logging level to fail validation")
	}
}
