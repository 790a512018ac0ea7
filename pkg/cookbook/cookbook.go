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

package cookbook

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alechouse97/recipe-helper/pkg/defaults"
	apperrors "github.com/alechouse97/recipe-helper/pkg/errors"
	"github.com/alechouse97/recipe-helper/pkg/recipe"
)

// DirBuilder builds one recipe from its directory. *recipe.Builder satisfies it.
type DirBuilder interface {
	BuildFromDir(ctx context.Context, dir string) (*recipe.Recipe, error)
}

// Discover returns the recipe directories under root, sorted by name. A
// directory counts as a recipe when it holds an ingredients file; anything
// else is skipped.
func Discover(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, dirError(root, err)
	}

	var dirs []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(root, e.Name())
		if _, err := os.Stat(filepath.Join(dir, defaults.IngredientsFile)); err != nil {
			slog.Debug("skipping directory without ingredients", "dir", dir)
			continue
		}
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	slog.Debug("discovered recipes", "root", root, "count", len(dirs))
	return dirs, nil
}

// Resolve maps recipe names to their directories under root, keeping the
// requested order. Unknown names fail with NOT_FOUND.
func Resolve(root string, names []string) ([]string, error) {
	dirs := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" || filepath.Base(name) != name {
			return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
				fmt.Sprintf("invalid recipe name %q", name), map[string]any{"recipe": name})
		}
		dir := filepath.Join(root, name)
		info, err := os.Stat(dir)
		if err != nil {
			return nil, apperrors.WrapWithContext(apperrors.ErrCodeNotFound,
				fmt.Sprintf("recipe %q not found in %s", name, root), err,
				map[string]any{"recipe": name, "root": root})
		}
		if !info.IsDir() {
			return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
				fmt.Sprintf("recipe %q is not a directory", name), map[string]any{"path": dir})
		}
		dirs = append(dirs, dir)
	}
	return dirs, nil
}

// BuildAll builds every directory with at most concurrency builds in flight.
// Results keep the order of dirs. The first failure cancels the remaining
// builds and is returned; no partial result set is returned with it.
func BuildAll(ctx context.Context, b DirBuilder, dirs []string, concurrency int) ([]*recipe.Recipe, error) {
	concurrency = clampConcurrency(concurrency)
	start := time.Now()

	results := make([]*recipe.Recipe, len(dirs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, dir := range dirs {
		i, dir := i, dir
		g.Go(func() error {
			bctx, cancel := context.WithTimeout(gctx, defaults.RecipeBuildTimeout)
			defer cancel()

			r, err := b.BuildFromDir(bctx, dir)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Debug("built recipes",
		"count", len(results),
		"concurrency", concurrency,
		"duration", time.Since(start))
	return results, nil
}

func clampConcurrency(n int) int {
	switch {
	case n < 1:
		return defaults.BuildConcurrency
	case n > defaults.MaxBuildConcurrency:
		return defaults.MaxBuildConcurrency
	default:
		return n
	}
}

func dirError(root string, err error) error {
	if stderrors.Is(err, fs.ErrNotExist) {
		return apperrors.WrapWithContext(apperrors.ErrCodeNotFound,
			fmt.Sprintf("recipes directory %s does not exist", root), err, map[string]any{"root": root})
	}
	return apperrors.WrapWithContext(apperrors.ErrCodeInternal,
		fmt.Sprintf("failed to list recipes directory %s", root), err, map[string]any{"root": root})
}
