package generator

import (
	"context"
	"path/filepath"
)

// GenerateSQL is a convenience function returning the program of a registered schema.
func GenerateSQL(ctx context.Context, name string) (string, error) {
	r, err := Generate(ctx, name, Options{})
	if err != nil {
		return "", err
	}
	return r.Program(), nil
}

// GenerateToFile is a convenience function writing a registered schema to one file.
func GenerateToFile(ctx context.Context, name, path string) error {
	r, err := Generate(ctx, name, Options{})
	if err != nil {
		return err
	}
	return r.WriteFile(path, true)
}

// GenerateMultiFile is a convenience function writing a registered schema as
// one file per statement under dir, with <dir>/<name>.sql as the main file.
func GenerateMultiFile(ctx context.Context, name, dir string) error {
	r, err := Generate(ctx, name, Options{})
	if err != nil {
		return err
	}
	return r.WriteMultiFile(filepath.Join(dir, name+".sql"), true)
}

// GenerateAllToDir is a convenience function writing every registered schema
// to <dir>/<name>.sql.
func GenerateAllToDir(ctx context.Context, dir string) error {
	results, err := GenerateAll(ctx, nil, Options{})
	if err != nil {
		return err
	}
	for _, r := range results {
		if err := r.WriteFile(filepath.Join(dir, r.Schema+".sql"), true); err != nil {
			return err
		}
	}
	return nil
}
