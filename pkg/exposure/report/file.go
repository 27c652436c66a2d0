package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/HumanExposure/cloet/pkg/exposure/model"
)

// ErrReportWrite is returned when a report file cannot be created or
// written. The wrapping error names the path and the underlying cause.
var ErrReportWrite = errors.New("unable to write report")

// reportDirEnv names the environment variable selecting the default report
// directory. A .env file in the working directory is honoured.
const reportDirEnv = "CLOET_REPORT_DIR"

// Option configures a file report.
type Option func(*config)

type config struct {
	path      string
	dir       string
	overwrite bool
}

// WithPath writes the report to the exact path instead of a generated,
// date-stamped name.
func WithPath(path string) Option {
	return func(c *config) {
		c.path = path
	}
}

// WithDir places the generated report file in dir instead of the directory
// named by CLOET_REPORT_DIR or the working directory.
func WithDir(dir string) Option {
	return func(c *config) {
		c.dir = dir
	}
}

// WithOverwrite replaces an existing file instead of picking a fresh
// "_1", "_2", ... suffixed name.
func WithOverwrite() Option {
	return func(c *config) {
		c.overwrite = true
	}
}

// File writes the text report to a file and returns the path written. By
// default the name is "<model title>_<scenario>_MMDDYYYY.txt" in the
// configured report directory, and an existing file is never overwritten.
// The file handle is released on every path, including write failures.
func File(res *model.Result, opts ...Option) (string, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	path := cfg.path
	if path == "" {
		dir := cfg.dir
		if dir == "" {
			dir = defaultDir()
		}

		path = filepath.Join(dir, defaultName(res))
	}

	if !cfg.overwrite {
		unique, err := uniquePath(path)
		if err != nil {
			return "", errors.Wrapf(ErrReportWrite, "path %s: %s", path, err)
		}

		path = unique
	}

	file, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(ErrReportWrite, "path %s: %s", path, err)
	}

	_, writeErr := io.WriteString(file, Text(res))
	closeErr := file.Close()

	if writeErr != nil {
		return "", errors.Wrapf(ErrReportWrite, "path %s: %s", path, writeErr)
	}

	if closeErr != nil {
		return "", errors.Wrapf(ErrReportWrite, "path %s: %s", path, closeErr)
	}

	return path, nil
}

var loadEnv sync.Once

func defaultDir() string {
	loadEnv.Do(func() {
		// Missing .env files are fine; the variable may come from the
		// process environment.
		_ = godotenv.Load()
	})

	if dir := os.Getenv(reportDirEnv); dir != "" {
		return dir
	}

	return "."
}

// defaultName builds "<title>_<scenario>_MMDDYYYY.txt" from the result.
func defaultName(res *model.Result) string {
	prefix := strings.ReplaceAll(strings.ToLower(res.Title()), " ", "_")
	stamp := time.Now().Format("01022006")

	return prefix + "_" + res.Scenario() + "_" + stamp + ".txt"
}

// uniquePath returns path if nothing exists there, otherwise the first
// "_1", "_2", ... suffixed variant that does not exist yet. A Stat failure
// other than not-exist is returned rather than treated as a collision.
func uniquePath(path string) (string, error) {
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return path, nil
	}

	if err != nil {
		return "", err
	}

	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)

	for index := 1; ; index++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, index, ext)

		_, err := os.Stat(candidate)
		if os.IsNotExist(err) {
			return candidate, nil
		}

		if err != nil {
			return "", err
		}
	}
}
