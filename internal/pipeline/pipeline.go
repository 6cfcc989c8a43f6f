// =============================================================================
// POS Report Processor - Processing Pipeline
// =============================================================================
//
// Orchestrates one run: discover export files, parse each with encoding
// fallback, merge into one table, apply transforms and dish-name cleaning,
// derive the summary and breakdown views, and export the workbook.
//
// The run is strictly sequential. Per-file parse failures are warnings and
// the run continues with the remaining files; only a missing input
// directory, zero parseable files, or an unwritable output path are fatal.
//
// =============================================================================

package pipeline

import (
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/ginjaninja78/pos-report-processor/internal/cleaner"
	"github.com/ginjaninja78/pos-report-processor/internal/config"
	"github.com/ginjaninja78/pos-report-processor/internal/posparser"
	"github.com/ginjaninja78/pos-report-processor/internal/report"
	"github.com/ginjaninja78/pos-report-processor/internal/xlsxwriter"
	"github.com/ginjaninja78/pos-report-processor/pkg/utils"
)

// ErrNoInputFiles is returned when the input directory contains no file
// that could be parsed. The run produces no output in that case.
var ErrNoInputFiles = errors.New("no valid input files")

// FileResult records the outcome of parsing one input file.
type FileResult struct {
	// Path is the input file.
	Path string

	// Rows is the number of data rows contributed, 0 on failure.
	Rows int

	// Encoding is the encoding that decoded the file, "" on failure.
	Encoding string

	// Err is the parse error, nil on success.
	Err error
}

// Stats summarizes a completed run.
type Stats struct {
	FilesFound   int
	FilesParsed  int
	FilesSkipped int
	RowsMerged   int
	Transactions int
	Dishes       int
	Elapsed      time.Duration
}

// Result holds the three derived tables and per-file outcomes of a run.
type Result struct {
	Detail    *report.Table
	Summary   *report.Table
	Breakdown *report.Table
	Files     []FileResult
	Stats     Stats
}

// Pipeline runs the full load/clean/aggregate sequence for one input
// directory under one configuration.
type Pipeline struct {
	cfg *config.Config
	log zerolog.Logger
}

// New creates a pipeline.
func New(cfg *config.Config, log zerolog.Logger) *Pipeline {
	return &Pipeline{cfg: cfg, log: log}
}

// Run executes the pipeline up to (but not including) the export step.
func (p *Pipeline) Run() (*Result, error) {
	start := time.Now()

	files, err := utils.DiscoverInputFiles(p.cfg.InputDir, p.cfg.Parse.FilePatterns)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.Errorf("%w: no files matching %v in %s",
			ErrNoInputFiles, p.cfg.Parse.FilePatterns, p.cfg.InputDir)
	}

	p.log.Info().Int("files", len(files)).Str("dir", p.cfg.InputDir).Msg("discovered input files")

	result := &Result{
		Detail: report.New(nil),
		Stats:  Stats{FilesFound: len(files)},
	}

	for _, file := range files {
		fr := FileResult{Path: file}

		data, err := posparser.Parse(file, p.cfg.Parse)
		if err != nil {
			fr.Err = err
			result.Stats.FilesSkipped++
			p.log.Warn().Err(err).Str("file", filepath.Base(file)).Msg("skipping unreadable file")
		} else {
			fr.Rows = data.RowCount()
			fr.Encoding = data.Encoding
			result.Stats.FilesParsed++
			result.Detail.AppendFrom(data.Headers, data.Rows)
			p.log.Debug().
				Str("file", filepath.Base(file)).
				Str("encoding", data.Encoding).
				Int("rows", data.RowCount()).
				Msg("parsed file")
		}

		result.Files = append(result.Files, fr)
	}

	if result.Stats.FilesParsed == 0 {
		return nil, errors.Errorf("%w: all %d file(s) failed to parse",
			ErrNoInputFiles, len(files))
	}

	result.Stats.RowsMerged = result.Detail.Len()
	p.log.Info().Int("rows", result.Stats.RowsMerged).Msg("merged input files")

	p.transform(result.Detail)
	p.derive(result)

	result.Stats.Elapsed = time.Since(start)
	return result, nil
}

// transform applies the in-place transforms to the merged detail table:
// forward fill, junk column removal, DateTime derivation, dish cleaning.
func (p *Pipeline) transform(detail *report.Table) {
	cols := p.cfg.Columns

	detail.ForwardFill(cols.ForwardFill)
	detail.DropColumns(cols.Drop...)

	parsed := detail.DeriveDateTime(cols.Date, cols.DateTime, cols.DateLayouts)
	if parsed < detail.Len() {
		p.log.Debug().
			Int("parsed", parsed).
			Int("rows", detail.Len()).
			Msg("some date cells did not match any configured layout")
	}

	if detail.HasColumn(cols.DishName) {
		c := cleaner.New(p.cfg.Cleaning)
		detail.ApplyToColumn(cols.DishName, c.Clean)
	}
}

// derive builds the summary and breakdown views from the cleaned detail.
func (p *Pipeline) derive(result *Result) {
	cols := p.cfg.Columns

	result.Summary = report.FirstPerKey(result.Detail, cols.TransactionKey, cols.DishLevel)
	result.Stats.Transactions = result.Summary.Len()

	sumCols := []string{cols.Quantity}
	if cols.Amount != "" && result.Detail.HasColumn(cols.Amount) {
		sumCols = append(sumCols, cols.Amount)
	}
	result.Breakdown = report.SumByKey(result.Detail, cols.DishName, sumCols)
	result.Stats.Dishes = result.Breakdown.Len()

	p.log.Info().
		Int("transactions", result.Stats.Transactions).
		Int("dishes", result.Stats.Dishes).
		Msg("derived summary views")
}

// Export writes the three sheets to the workbook at path. This is the one
// hard failure of the run.
func (p *Pipeline) Export(result *Result, path string) error {
	err := xlsxwriter.Write(path, []xlsxwriter.Sheet{
		{Name: p.cfg.Sheets.Detail, Table: result.Detail},
		{Name: p.cfg.Sheets.Summary, Table: result.Summary},
		{Name: p.cfg.Sheets.Breakdown, Table: result.Breakdown},
	})
	if err != nil {
		return err
	}

	p.log.Info().Str("output", path).Msg("report saved")
	return nil
}

// OutputPath resolves the workbook path: an explicit path wins, then the
// configured output file, then the name pattern expanded into the input
// directory.
func (p *Pipeline) OutputPath(explicit string, now time.Time) string {
	if explicit != "" {
		return explicit
	}
	if p.cfg.OutputFile != "" {
		return p.cfg.OutputFile
	}
	return filepath.Join(p.cfg.InputDir, utils.GenerateOutputFileName(p.cfg.OutputNamePattern, now))
}
