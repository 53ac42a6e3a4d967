package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mauv0809/fighter-franchise/internal/api"
)

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", raw)
	}
	return id, nil
}

// openImage opens the file at path for upload. An empty path means no image.
func openImage(path string) (*api.Image, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open image: %w", err)
	}
	return &api.Image{Name: filepath.Base(path), Content: f}, func() { f.Close() }, nil
}
