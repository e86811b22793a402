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
	"strings"

	"github.com/spf13/viper"

	"github.com/evernym/mysql-wallet-storage-sub000/pkg/errors"
)

const envPrefix = "WALLETSTORAGE"

// LoadBootstrap loads the bootstrap configuration. path, if non-empty,
// is read explicitly (format inferred from its extension); otherwise
// viper searches the working directory and /etc/walletstoragectl for a
// file named "walletstorage.yaml"/"walletstorage.json". Every field can
// additionally be overridden by a WALLETSTORAGE_<SECTION>_<FIELD>
// environment variable, which takes precedence over the file.
func LoadBootstrap(path string) (*Bootstrap, error) {
	v := viper.New()
	setDefaults(v, DefaultBootstrap())

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("walletstorage")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/walletstoragectl")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, errors.ErrConfigurationError.Wrap(err)
		}
	}

	var cfg Bootstrap
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.ErrConfigurationError.Wrap(err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults registers defaults.Bootstrap's fields with v so
// v.Unmarshal always produces a complete struct even when the config
// file and environment are both silent on a field.
func setDefaults(v *viper.Viper, defaults *Bootstrap) {
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("metrics.enabled", defaults.Metrics.Enabled)
	v.SetDefault("metrics.address", defaults.Metrics.Address)
	v.SetDefault("metrics.path", defaults.Metrics.Path)
	v.SetDefault("pool.readhost", defaults.Pool.ReadHost)
	v.SetDefault("pool.writehost", defaults.Pool.WriteHost)
	v.SetDefault("pool.port", defaults.Pool.Port)
	v.SetDefault("pool.dbname", defaults.Pool.DBName)
}
