package exposure

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/HumanExposure/cloet/pkg/exposure/model"
	"github.com/HumanExposure/cloet/pkg/exposure/report"
)

// Run names one model evaluation inside a batch.
type Run struct {
	// Name labels the run in report filenames and error messages. When
	// empty the model name is used.
	Name  string
	Route model.Route
	Model string
	Opts  []model.Option
}

type batchSettings struct {
	limit     int
	reportDir string
}

// BatchOption configures a call to Batch.
type BatchOption func(*batchSettings)

// WithLimit caps the number of evaluations running concurrently. The
// default is one run at a time.
func WithLimit(limit int) BatchOption {
	return func(s *batchSettings) {
		s.limit = limit
	}
}

// WithReports writes a text report for every run into dir. Filenames are
// prefixed with a batch ID so repeated batches never collide.
func WithReports(dir string) BatchOption {
	return func(s *batchSettings) {
		s.reportDir = dir
	}
}

// Batch evaluates every run and returns the results in run order. The
// first evaluation error cancels the remaining runs.
func Batch(ctx context.Context, runs []Run, opts ...BatchOption) ([]*model.Result, error) {
	settings := batchSettings{limit: 1}

	for _, opt := range opts {
		opt(&settings)
	}

	batchID := uuid.NewString()
	results := make([]*model.Result, len(runs))

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(settings.limit)

	for idx, run := range runs {
		idx, run := idx, run

		grp.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			res, err := Eval(run.Route, run.Model, run.Opts...)
			if err != nil {
				return errors.Wrapf(err, "run %s", runLabel(run))
			}

			if settings.reportDir != "" {
				path := filepath.Join(settings.reportDir, batchReportName(batchID, idx, run))

				_, err = report.File(res, report.WithPath(path))
				if err != nil {
					return errors.Wrapf(err, "run %s", runLabel(run))
				}
			}

			results[idx] = res

			return nil
		})
	}

	err := grp.Wait()
	if err != nil {
		return nil, err
	}

	return results, nil
}

func runLabel(run Run) string {
	if run.Name != "" {
		return run.Name
	}

	return run.Model
}

func batchReportName(batchID string, idx int, run Run) string {
	label := strings.ToLower(strings.ReplaceAll(runLabel(run), " ", "_"))

	return fmt.Sprintf("%s_%02d_%s.txt", batchID, idx+1, label)
}
