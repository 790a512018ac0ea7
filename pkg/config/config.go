// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/alechouse97/recipe-helper/pkg/defaults"
	apperrors "github.com/alechouse97/recipe-helper/pkg/errors"
	"github.com/alechouse97/recipe-helper/pkg/prices"
	"github.com/alechouse97/recipe-helper/pkg/serializer"
)

// Config is the project configuration file.
type Config struct {
	// Prices is the price database file.
	Prices string `json:"prices" yaml:"prices"`

	// RecipesDir holds one subdirectory per recipe.
	RecipesDir string `json:"recipesDir" yaml:"recipesDir"`

	// Recipes limits reports to the named recipes. Empty means all.
	Recipes []string `json:"recipes,omitempty" yaml:"recipes,omitempty"`

	// Duplicates is the price file duplicate policy: overwrite or reject.
	Duplicates string `json:"duplicates" yaml:"duplicates"`

	// Concurrency is the number of recipes built in parallel.
	Concurrency int `json:"concurrency" yaml:"concurrency"`
}

// Default returns the configuration used when no file is given, with paths
// relative to the working directory.
func Default() *Config {
	return &Config{
		Prices:      defaults.PricesFile,
		RecipesDir:  defaults.RecipesDir,
		Duplicates:  string(prices.DuplicateOverwrite),
		Concurrency: defaults.BuildConcurrency,
	}
}

// Load reads the config file at path. Unset fields take their defaults and
// relative paths are resolved against the file's directory.
func Load(path string) (*Config, error) {
	loaded, err := serializer.FromFile[Config](path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	cfg.merge(loaded)
	cfg.Resolve(filepath.Dir(path))

	if err := cfg.Validate(); err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid config %s", path), err, map[string]any{"path": path})
	}

	slog.Debug("loaded config",
		"path", path,
		"prices", cfg.Prices,
		"recipesDir", cfg.RecipesDir,
		"recipes", len(cfg.Recipes))
	return cfg, nil
}

// LoadOrDefault loads path when it exists and falls back to Default otherwise.
// Any other read or validation error is returned.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, nil
	}
	if apperrors.IsCode(err, apperrors.ErrCodeNotFound) {
		slog.Debug("config file not found, using defaults", "path", path)
		return Default(), nil
	}
	return nil, err
}

func (c *Config) merge(o *Config) {
	if o.Prices != "" {
		c.Prices = o.Prices
	}
	if o.RecipesDir != "" {
		c.RecipesDir = o.RecipesDir
	}
	if len(o.Recipes) > 0 {
		c.Recipes = o.Recipes
	}
	if o.Duplicates != "" {
		c.Duplicates = o.Duplicates
	}
	if o.Concurrency != 0 {
		c.Concurrency = o.Concurrency
	}
}

// Resolve makes relative paths relative to baseDir.
func (c *Config) Resolve(baseDir string) {
	c.Prices = resolve(baseDir, c.Prices)
	c.RecipesDir = resolve(baseDir, c.RecipesDir)
}

func resolve(baseDir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}

// Validate checks the duplicate policy and concurrency bounds.
func (c *Config) Validate() error {
	if c.Prices == "" {
		return apperrors.New(apperrors.ErrCodeInvalidRequest, "prices file must be set")
	}
	if c.RecipesDir == "" {
		return apperrors.New(apperrors.ErrCodeInvalidRequest, "recipes directory must be set")
	}
	if !c.DuplicatePolicy().IsValid() {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unsupported duplicates policy %q", c.Duplicates),
			map[string]any{"supported": prices.SupportedDuplicatePolicies()})
	}
	if c.Concurrency < 1 || c.Concurrency > defaults.MaxBuildConcurrency {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("concurrency must be between 1 and %d, got %d", defaults.MaxBuildConcurrency, c.Concurrency),
			map[string]any{"concurrency": c.Concurrency})
	}
	return nil
}

// DuplicatePolicy returns the configured price duplicate policy.
func (c *Config) DuplicatePolicy() prices.DuplicatePolicy {
	return prices.DuplicatePolicy(c.Duplicates)
}
