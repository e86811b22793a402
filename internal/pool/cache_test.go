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

package pool

import (
	"context"
	"testing"
	"time"
)

func TestNewCache(t *testing.T) {
	c := NewCache()
	if c == nil {
		t.Fatal("NewCache() should not return nil")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %v, want 0", c.Len())
	}
}

func TestCache_Get_ConnectionFailureDoesNotCache(t *testing.T) {
	c := NewCache()
	cfg := Config{ReadHost: "127.0.0.1", WriteHost: "127.0.0.1", Port: 1, DBName: "wallets"}
	creds := Credentials{User: "u", Pass: "p"}

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	if _, err := c.Get(ctx, true, cfg, creds); err == nil {
		t.Fatal("Get() against an unreachable port should fail")
	}

	if c.Len() != 0 {
		t.Errorf("Len() after a failed Get = %v, want 0 (nothing should be cached on failure)", c.Len())
	}
}

func TestCache_CloseAll_Empty(t *testing.T) {
	c := NewCache()
	if err := c.CloseAll(); err != nil {
		t.Errorf("CloseAll() on an empty cache should not error, got %v", err)
	}
}
