package application

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/comnam90/vdc-vault-readiness-sub000/internal/domain"
)

// AnalyzeService wraps the pure pipeline with file reading, config loading
// and run history: read export -> load thresholds -> Analyze -> Summarize.
type AnalyzeService struct {
	reader       domain.ExportReader
	configLoader domain.ConfigLoader
	history      domain.RunHistory
	logger       *zap.Logger
}

// NewAnalyzeService creates an AnalyzeService. history may be nil.
func NewAnalyzeService(
	reader domain.ExportReader,
	configLoader domain.ConfigLoader,
	history domain.RunHistory,
	logger *zap.Logger,
) *AnalyzeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyzeService{
		reader:       reader,
		configLoader: configLoader,
		history:      history,
		logger:       logger,
	}
}

// AnalyzeFile analyzes one export. Thresholds are loaded from configDir, or
// from the export's directory when configDir is empty.
func (s *AnalyzeService) AnalyzeFile(ctx context.Context, path, configDir string) (*domain.Report, error) {
	if configDir == "" {
		configDir = filepath.Dir(path)
	}

	th, err := s.configLoader.Load(configDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	root, err := s.reader.Read(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	started := time.Now()
	analysis := Analyze(root, th)
	report := &domain.Report{
		Source:   path,
		Verdict:  domain.VerdictFor(analysis.Validations),
		Analysis: analysis,
		Summary:  Summarize(analysis.Dataset, th),
	}

	counts := domain.CountByStatus(analysis.Validations)
	s.logger.Debug("analysis complete",
		zap.String("source", path),
		zap.String("verdict", string(report.Verdict)),
		zap.Int("jobs", len(analysis.Dataset.Jobs)),
		zap.Int("data_errors", len(analysis.Dataset.DataErrors)),
		zap.Duration("elapsed", time.Since(started)),
	)
	if n := len(analysis.Dataset.DataErrors); n > 0 {
		s.logger.Warn("rows dropped during normalization", zap.String("source", path), zap.Int("count", n))
	}

	if s.history != nil {
		entry := domain.RunEntry{
			Timestamp:  time.Now().Format(time.RFC3339),
			Source:     filepath.Base(path),
			Verdict:    report.Verdict,
			Failures:   counts[domain.StatusFail],
			Warnings:   counts[domain.StatusWarning],
			DataErrors: len(analysis.Dataset.DataErrors),
		}
		if err := s.history.Save(filepath.Dir(path), entry); err != nil {
			s.logger.Warn("saving run history", zap.Error(err))
		}
	}

	return report, nil
}

// AnalyzeFiles analyzes several exports concurrently. Reports come back in
// input order; the first error cancels the remaining runs.
func (s *AnalyzeService) AnalyzeFiles(ctx context.Context, paths []string, configDir string) ([]*domain.Report, error) {
	reports := make([]*domain.Report, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, p := range paths {
		g.Go(func() error {
			report, err := s.AnalyzeFile(ctx, p, configDir)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
