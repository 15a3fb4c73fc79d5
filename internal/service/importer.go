package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/tedsearch/tedsearch/internal/config"
	"github.com/tedsearch/tedsearch/internal/model"
	"github.com/tedsearch/tedsearch/internal/ted"
)

// ImportStats tracks ingestion statistics for one package run.
type ImportStats struct {
	Total    int
	Notices  int
	Awards   int
	Rejected int
	Failed   int
}

// Message reports the run outcome in the form shown on the status record.
func (s *ImportStats) Message() string {
	if s.Awards == 0 && s.Notices == 0 {
		return "Uploaded file processed successfully but no valid Contract Award Notice data was found."
	}
	return fmt.Sprintf("%d new Contract Award Notice(s) and %d new Contract Notice(s) added to the database successfully.",
		s.Awards, s.Notices)
}

// ErrPackageExists is returned when a package for the requested date has
// already been ingested to completion.
var ErrPackageExists = errors.New("package for date already ingested")

// Importer orchestrates the daily package ingestion process: download,
// extraction, per-document validation and persistence, and status tracking.
type Importer struct {
	cfg       *config.Config
	source    PackageSource
	validator *ted.Validator
	builder   *Builder
	statuses  StatusStore
	logger    *log.Logger
	errLogger *log.Logger
}

// NewImporter creates a new Importer.
func NewImporter(cfg *config.Config, source PackageSource, validator *ted.Validator, builder *Builder, statuses StatusStore) *Importer {
	return &Importer{
		cfg:       cfg,
		source:    source,
		validator: validator,
		builder:   builder,
		statuses:  statuses,
		logger:    log.New(os.Stdout, "", log.LstdFlags),
		errLogger: log.New(os.Stderr, "ERROR: ", log.LstdFlags),
	}
}

// RunForDate finds the daily package published for the given date and ingests
// it. A completed run for the same date refuses a second download.
func (i *Importer) RunForDate(ctx context.Context, date time.Time) (*ImportStats, error) {
	done, err := i.statuses.CompletedForDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if done {
		return nil, fmt.Errorf("%w: %s", ErrPackageExists, date.Format("2006-01-02"))
	}

	i.logger.Printf("Checking TED for the %s daily package...", date.Format("2006-01-02"))
	fileName, err := i.source.CheckDailyPackage(ctx, date)
	if err != nil {
		return nil, err
	}
	if fileName == "" {
		return nil, fmt.Errorf("no daily package published yet for %s", date.Format("2006-01-02"))
	}

	return i.Run(ctx, fileName)
}

// Run ingests the named daily package end to end, driving the status record
// through its states. The temp dir is cleared on every exit path so a failed
// run never leaves a partial extraction behind.
func (i *Importer) Run(ctx context.Context, fileName string) (*ImportStats, error) {
	st, err := i.statuses.GetOrCreate(ctx, fileName)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err := ClearTempDir(i.cfg.TempDir); err != nil {
			i.errLogger.Printf("Failed to clear temp dir: %v", err)
		}
	}()

	stats, err := i.run(ctx, st, fileName)
	if err != nil {
		state := model.StateError
		if errors.Is(err, context.DeadlineExceeded) {
			state = model.StateTimeout
		}
		if stErr := i.statuses.SetState(context.WithoutCancel(ctx), st, state, err.Error()); stErr != nil {
			i.errLogger.Printf("Failed to record %s state: %v", state, stErr)
		}
		return stats, err
	}

	if err := i.statuses.SetState(ctx, st, model.StateComplete, stats.Message()); err != nil {
		return stats, err
	}
	return stats, nil
}

func (i *Importer) run(ctx context.Context, st *model.PackageStatus, fileName string) (*ImportStats, error) {
	if err := i.statuses.SetState(ctx, st, model.StateDownloading, ""); err != nil {
		return nil, err
	}

	i.logger.Printf("Downloading %s...", fileName)
	archivePath, err := i.source.RetrieveDailyPackage(ctx, fileName, i.cfg.TempDir)
	if err != nil {
		return nil, err
	}

	if err := i.statuses.SetState(ctx, st, model.StateProcessing, ""); err != nil {
		return nil, err
	}

	extractDir, err := ExtractPackage(archivePath, i.cfg.TempDir)
	if err != nil {
		if errors.Is(err, ErrNotPackage) {
			return nil, errors.New("Uploaded .tar.gz archive file is not a valid TED bulk download.")
		}
		return nil, err
	}

	return i.ProcessDir(ctx, extractDir)
}

// ProcessDir ingests every XML document under dir, depth first, in file name
// order. Documents are processed sequentially so award notices published
// after their parent contract notice in the same package resolve correctly.
func (i *Importer) ProcessDir(ctx context.Context, dir string) (*ImportStats, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".xml") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk package dir: %w", err)
	}
	sort.Strings(paths)

	stats := &ImportStats{Total: len(paths)}
	i.logger.Printf("Found %d documents to process", stats.Total)

	for idx, path := range paths {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		progress := fmt.Sprintf("[%d/%d]", idx+1, stats.Total)
		name := filepath.Base(path)

		f, err := os.Open(path)
		if err != nil {
			return stats, fmt.Errorf("open %q: %w", name, err)
		}
		doc, err := ted.Parse(f)
		f.Close()
		if err != nil {
			i.errLogger.Printf("%s Failed to parse %s: %v", progress, name, err)
			stats.Failed++
			continue
		}

		accepted, violations, err := i.checkAndBuild(ctx, doc)
		if err != nil {
			i.errLogger.Printf("%s Failed to process %s: %v", progress, name, err)
			stats.Failed++
			continue
		}
		if !accepted {
			i.logger.Printf("%s Rejected %s: %s", progress, name, strings.Join(violations, " "))
			stats.Rejected++
			continue
		}

		if doc.Type() == ted.DocTypeAward {
			stats.Awards++
		} else {
			stats.Notices++
		}
		i.logger.Printf("%s Ingested %s", progress, name)
	}

	return stats, nil
}

// IngestFile processes a single uploaded document and reports the validation
// outcome. A document that does not parse as XML is reported as a violation,
// not an error, so the caller can surface it like any other rejection.
func (i *Importer) IngestFile(ctx context.Context, fileName string, r io.Reader) (accepted bool, violations []string, err error) {
	doc, err := ted.Parse(r)
	if err != nil {
		return false, []string{fmt.Sprintf("%q file contains invalid syntax.", fileName)}, nil
	}
	return i.checkAndBuild(ctx, doc)
}

// PrintSummary prints the ingestion statistics.
func (i *Importer) PrintSummary(stats *ImportStats) {
	i.logger.Println("")
	i.logger.Println("=== Ingestion Summary ===")
	i.logger.Printf("Total documents:  %d", stats.Total)
	i.logger.Printf("Contract notices: %d", stats.Notices)
	i.logger.Printf("Award notices:    %d", stats.Awards)
	i.logger.Printf("Rejected:         %d", stats.Rejected)
	i.logger.Printf("Failed:           %d", stats.Failed)
}

func (i *Importer) checkAndBuild(ctx context.Context, doc *ted.Document) (bool, []string, error) {
	accepted, violations, err := i.validator.Check(ctx, doc)
	if err != nil || !accepted {
		return false, violations, err
	}

	switch doc.Type() {
	case ted.DocTypeNotice:
		if _, err := i.builder.BuildNotice(ctx, doc); err != nil {
			return false, nil, err
		}
	case ted.DocTypeAward:
		if _, err := i.builder.BuildAward(ctx, doc); err != nil {
			return false, nil, err
		}
	}
	return true, nil, nil
}
