package credentials

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// FileProvider reads a service-account key file.
type FileProvider struct {
	path string
}

func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

func (p *FileProvider) Name() string { return "file " + p.path }

func (p *FileProvider) Resolve(ctx context.Context) (*Bundle, error) {
	if p.path == "" {
		return nil, fmt.Errorf("%w: no credential file configured", ErrNoCredentials)
	}
	data, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s does not exist", ErrNoCredentials, p.path)
		}
		return nil, fmt.Errorf("failed to read credential file: %w", err)
	}
	return newBundle(ctx, p.Name(), data)
}
