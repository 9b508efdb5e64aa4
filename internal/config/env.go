// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package config

import (
	"errors"
	"fmt"
	"maps"
	"os"

	"github.com/joho/godotenv"
)

// ReadDotEnv reads KEY=VALUE pairs from a .env file. A missing file yields
// an empty map.
func ReadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}

	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}

		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return values, nil
}

// Resolve builds the effective config: defaults, then the file at path,
// then dotEnvPath, then the process environment.
func Resolve(path, dotEnvPath string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	env, err := ReadDotEnv(dotEnvPath)
	if err != nil {
		return nil, err
	}

	maps.Copy(env, ProcessEnv())

	if err := cfg.ApplyEnv(env); err != nil {
		return nil, err
	}

	return cfg, nil
}
