// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package upload

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
)

// ErrNoFiles is returned when the local directory holds nothing to upload.
var ErrNoFiles = errors.New("no files found")

// Item is one planned transfer.
type Item struct {
	Local string // absolute local path
	Key   string // object key in the bucket
	Size  int64
}

// JoinKey places the slash-separated relative path rel under prefix.
func JoinKey(prefix, rel string) string {
	rel = strings.TrimPrefix(rel, "/")
	prefix = strings.TrimSuffix(prefix, "/")
	if prefix == "" {
		return rel
	}
	return prefix + "/" + rel
}

// Plan walks root and returns an Item for every regular file beneath it,
// including symlinks that resolve to regular files.
func Plan(root, prefix string) ([]Item, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", root, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("the local folder does not exist: %s", abs)
		}
		return nil, fmt.Errorf("local folder: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("the local folder %q is not a directory", abs)
	}

	var items []Item
	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		fi, err := os.Stat(path)
		if err != nil {
			if d.Type()&fs.ModeSymlink != 0 {
				log.WithError(err).Warnf("skipping dangling symlink %s", path)
				return nil
			}
			return err
		}
		if !fi.Mode().IsRegular() {
			log.Debugf("skipping %s (%s)", path, fi.Mode().Type())
			return nil
		}

		rel, err := filepath.Rel(abs, path)
		if err != nil {
			return err
		}

		items = append(items, Item{
			Local: path,
			Key:   JoinKey(prefix, filepath.ToSlash(rel)),
			Size:  fi.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", abs, err)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("%w in the local folder: %s", ErrNoFiles, abs)
	}

	log.Debugf("planned %d files under %s", len(items), abs)
	return items, nil
}
