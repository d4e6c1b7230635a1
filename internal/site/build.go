package site

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tharindu1999/portfolio/internal/logger"
)

// Build exports the site to dir: index.html, motion.json and static/. It
// returns the number of files written.
func (s *Site) Build(ctx context.Context, dir string) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBuild, err)
	}

	written := 0
	index, err := os.Create(filepath.Join(dir, "index.html"))
	if err != nil {
		return written, fmt.Errorf("%w: %v", ErrBuild, err)
	}
	if err := s.Render(index); err != nil {
		_ = index.Close()
		return written, fmt.Errorf("%w: %v", ErrBuild, err)
	}
	if err := index.Close(); err != nil {
		return written, fmt.Errorf("%w: %v", ErrBuild, err)
	}
	written++

	tables, err := json.MarshalIndent(s.tables, "", "  ")
	if err != nil {
		return written, fmt.Errorf("%w: %v", ErrBuild, err)
	}
	if err := os.WriteFile(filepath.Join(dir, "motion.json"), tables, 0o644); err != nil {
		return written, fmt.Errorf("%w: %v", ErrBuild, err)
	}
	written++

	err = fs.WalkDir(s.static, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		target := filepath.Join(dir, "static", filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(s.static, path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return err
		}
		written++
		return nil
	})
	if err != nil {
		return written, fmt.Errorf("%w: %v", ErrBuild, err)
	}

	s.metrics.exportedFiles.Add(float64(written))
	s.log.Info(ctx, "site exported",
		logger.String("dir", dir),
		logger.Int("files", written),
		logger.String("base_path", s.data.Base))
	return written, nil
}
