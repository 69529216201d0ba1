// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-scratch-gift/internal/logger"
)

// uploadFileStorage writes uploads as flat files in one directory.
type uploadFileStorage struct {
	dir    string
	ids    IDGenerator
	logger *logger.Logger
}

// NewUploadFileStorage creates dir when missing and returns an
// [UploadStorage] rooted there.
func NewUploadFileStorage(dir string, ids IDGenerator, logger *logger.Logger) (UploadStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating uploads dir: %w", err)
	}

	return &uploadFileStorage{dir: dir, ids: ids, logger: logger}, nil
}

func (u *uploadFileStorage) Save(ctx context.Context, ext string, content io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	name := u.ids.Generate() + strings.ToLower(ext)
	path := filepath.Join(u.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		log.Err(err).Str("file", name).Msg("error creating upload file")
		return "", fmt.Errorf("error creating upload file: %w", err)
	}

	if _, err = io.Copy(f, content); err != nil {
		f.Close()
		_ = os.Remove(path)
		log.Err(err).Str("file", name).Msg("error writing upload file")
		return "", fmt.Errorf("error writing upload file: %w", err)
	}

	if err = f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("error closing upload file: %w", err)
	}

	return name, nil
}

func (u *uploadFileStorage) Delete(_ context.Context, name string) error {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidUploadName, name)
	}

	err := os.Remove(filepath.Join(u.dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error removing upload %s: %w", name, err)
	}

	return nil
}

func (u *uploadFileStorage) Dir() string {
	return u.dir
}
