// Package seed loads a SQL file and runs it through the backend's exec_sql procedure.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// ManualAdvice is logged after any failure.
const ManualAdvice = "run the SQL file manually in the database SQL editor"

var ErrFileRead = errors.New("read seed file")

// Executor runs a whole SQL script as one exec_sql call.
type Executor interface {
	ExecSQL(ctx context.Context, sql string) error
}

type Seeder struct {
	exec   Executor
	fsys   fs.FS
	file   string
	logger *zap.Logger
}

// New seeds from file inside fsys, e.g. an embedded mock data set.
func New(exec Executor, fsys fs.FS, file string, logger *zap.Logger) *Seeder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Seeder{exec: exec, fsys: fsys, file: file, logger: logger}
}

// FromPath seeds from a file on disk, relative paths resolved against the working dir.
func FromPath(exec Executor, path string, logger *zap.Logger) *Seeder {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return New(exec, os.DirFS(filepath.Dir(abs)), filepath.Base(abs), logger)
}

// Run reads the file and executes it. Every outcome is logged; the returned error is
// only for callers that want it. Running twice inserts the data twice.
func (s *Seeder) Run(ctx context.Context) error {
	log := s.logger.With(zap.String("file", s.file))

	raw, err := fs.ReadFile(s.fsys, s.file)
	if err != nil {
		err = fmt.Errorf("%w %s: %w", ErrFileRead, s.file, err)
		log.Error("seed failed", zap.Error(err))
		log.Info(ManualAdvice)
		return err
	}

	log.Info("seeding database", zap.Int("bytes", len(raw)))
	if err := s.exec.ExecSQL(ctx, string(raw)); err != nil {
		log.Error("seed failed", zap.Error(err))
		log.Info(ManualAdvice)
		return err
	}
	log.Info("seed completed")
	return nil
}
