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

import "testing"

func TestDefaultBootstrap(t *testing.T) {
	cfg := DefaultBootstrap()
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Metrics.Address != ":9090" || cfg.Metrics.Path != "/metrics" {
		t.Fatalf("unexpected metrics defaults: %+v", cfg.Metrics)
	}
	if cfg.Pool.Port != 3306 {
		t.Fatalf("expected default MySQL port 3306, got %d", cfg.Pool.Port)
	}
}

func TestBootstrap_Validate(t *testing.T) {
	cfg := DefaultBootstrap()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestBootstrap_Validate_RejectsUnknownLevel(t *testing.T) {
	cfg := DefaultBootstrap()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected rejection of an unknown logging level")
	}
}

func TestBootstrap_Validate_RejectsUnknownFormat(t *testing.T) {
	cfg := DefaultBootstrap()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected rejection of an unknown logging format")
	}
}
