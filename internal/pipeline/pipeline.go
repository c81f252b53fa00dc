package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/roach88/kanjiparse/internal/config"
	"github.com/roach88/kanjiparse/internal/identity"
	"github.com/roach88/kanjiparse/internal/kanjidic"
	"github.com/roach88/kanjiparse/internal/similarity"
	"github.com/roach88/kanjiparse/internal/store"
	"github.com/roach88/kanjiparse/internal/story"
	"github.com/roach88/kanjiparse/internal/tabular"
	"github.com/roach88/kanjiparse/internal/workbook"
)

// Source names used in the report.
const (
	SourceWorkbook   = "workbook"
	SourceDictionary = "dictionary"
)

// Pipeline runs the full transformation for one configuration.
type Pipeline struct {
	cfg    config.Config
	logger *slog.Logger
	newID  func() string
	now    func() time.Time
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithRunID fixes the run id generator, for reproducible exports.
func WithRunID(fn func() string) Option {
	return func(p *Pipeline) { p.newID = fn }
}

// WithClock overrides the wall clock used for the run timestamp.
func WithClock(fn func() time.Time) Option {
	return func(p *Pipeline) { p.now = fn }
}

// New creates a pipeline. A nil logger discards output.
func New(cfg config.Config, logger *slog.Logger, opts ...Option) *Pipeline {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	p := &Pipeline{
		cfg:    cfg,
		logger: logger,
		newID:  func() string { return uuid.NewString() },
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// StoryOutput is the result of the story stage.
type StoryOutput struct {
	Rows   int
	Result story.Result // Stories carry resolved display identities
}

// Stories reads the workbook, extracts story records and resolves display
// identities.
func (p *Pipeline) Stories() (*StoryOutput, error) {
	path := p.cfg.Workbook.Path
	if err := checkSource(path); err != nil {
		return nil, err
	}

	rows, err := workbook.ReadSheet(path, p.cfg.Workbook.Sheet)
	if err != nil {
		return nil, sourceError(path, err)
	}
	p.logger.Info("workbook loaded", "path", path, "sheet", p.cfg.Workbook.Sheet, "rows", len(rows))

	res := story.NewExtractor(p.cfg.Layout(), p.cfg.Workbook.HeaderSentinel, p.logger).Extract(rows)
	dup := identity.Duplicates(res.Stories)
	res.Stories = identity.Resolve(res.Stories)

	p.logger.Info("stories extracted",
		"groups", len(res.Groups),
		"stories", len(res.Stories),
		"duplicate_characters", dup,
		"skipped_rows", res.Skipped.Total(),
	)
	return &StoryOutput{Rows: len(rows), Result: res}, nil
}

// SimilarityOutput is the result of the dictionary stage.
type SimilarityOutput struct {
	Dictionary *kanjidic.Dictionary
	Groups     []similarity.Group
}

// Similarity reads the dictionary and synthesizes similarity groups.
func (p *Pipeline) Similarity() (*SimilarityOutput, error) {
	path := p.cfg.Dictionary.Path
	if err := checkSource(path); err != nil {
		return nil, err
	}

	dict, err := kanjidic.Load(path)
	if err != nil {
		return nil, sourceError(path, err)
	}
	p.logger.Info("dictionary loaded", "path", path, "characters", dict.Len())

	groups := similarity.Synthesize(dict)
	counts := similarity.Counts(groups)
	p.logger.Info("similarity groups generated",
		"total", len(groups),
		"radical", counts[similarity.TypeRadical],
		"on_reading", counts[similarity.TypeOnReading],
		"kun_reading", counts[similarity.TypeKunReading],
	)
	return &SimilarityOutput{Dictionary: dict, Groups: groups}, nil
}

// Run executes both stages and writes every available output. Source
// problems are recorded in the report; the returned error is non-nil only
// for output failures and cancellation.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	report := &Report{
		RunID:     p.newID(),
		StartedAt: p.now().UTC(),
	}

	if err := os.MkdirAll(p.cfg.Output.Dir, 0o755); err != nil {
		return report, fmt.Errorf("%w: create output directory: %w", ErrOutput, err)
	}
	p.logger.Debug("output directory ready", "dir", p.cfg.Output.Dir)

	stories, err := p.Stories()
	if err := p.recordSource(report, SourceWorkbook, p.cfg.Workbook.Path, err); err != nil {
		return report, err
	}
	if err := ctx.Err(); err != nil {
		return report, err
	}

	similar, err := p.Similarity()
	if err := p.recordSource(report, SourceDictionary, p.cfg.Dictionary.Path, err); err != nil {
		return report, err
	}
	if err := ctx.Err(); err != nil {
		return report, err
	}

	export := store.Export{
		Run: store.Run{
			ID:             report.RunID,
			StartedAt:      report.StartedAt,
			WorkbookPath:   p.cfg.Workbook.Path,
			DictionaryPath: p.cfg.Dictionary.Path,
		},
	}

	if stories != nil {
		res := stories.Result
		report.Stories = &StorySummary{
			Rows:       stories.Rows,
			Groups:     len(res.Groups),
			Stories:    len(res.Stories),
			Duplicates: identity.Duplicates(res.Stories),
			Skipped:    res.Skipped,
		}
		if err := writeTable(p, report, OutputStoryGroups, p.cfg.StoryGroupsPath(), story.GroupColumns, res.Groups); err != nil {
			return report, err
		}
		if err := writeTable(p, report, OutputStories, p.cfg.StoriesPath(), story.RecordColumns, res.Stories); err != nil {
			return report, err
		}
		export.Groups = res.Groups
		export.Stories = res.Stories
	} else {
		report.skip(OutputStoryGroups, p.cfg.StoryGroupsPath(), "workbook unavailable")
		report.skip(OutputStories, p.cfg.StoriesPath(), "workbook unavailable")
	}

	if similar != nil {
		report.Dictionary = &DictionarySummary{
			Characters: similar.Dictionary.Len(),
			Groups:     similarity.Counts(similar.Groups),
		}
		if err := writeTable(p, report, OutputSimilarityGroups, p.cfg.SimilarityGroupsPath(), similarity.Columns, similar.Groups); err != nil {
			return report, err
		}
		export.Similar = similar.Groups
	} else {
		report.skip(OutputSimilarityGroups, p.cfg.SimilarityGroupsPath(), "dictionary unavailable")
	}

	if err := p.writeDatabase(ctx, report, export, stories != nil || similar != nil); err != nil {
		return report, err
	}

	p.logger.Info("run complete",
		"run_id", report.RunID,
		"written", len(report.Written()),
		"skipped", len(report.Skipped()),
	)
	return report, nil
}

// recordSource adds a source line to the report. Recoverable errors are
// logged and swallowed; anything else is returned.
func (p *Pipeline) recordSource(report *Report, name, path string, err error) error {
	status := SourceStatus{Name: name, Path: path, Used: err == nil}
	if err != nil {
		status.Error = err.Error()
	}
	report.Sources = append(report.Sources, status)

	switch {
	case err == nil:
		return nil
	case !Recoverable(err):
		return err
	case errors.Is(err, ErrMissingInput):
		p.logger.Warn("source not found, skipping", "source", name, "path", path)
	default:
		p.logger.Error("source unreadable, skipping", "source", name, "path", path, "error", err)
	}
	return nil
}

// writeTable writes one CSV output, or records it as skipped when there are
// no records.
func writeTable[T tabular.Rower](p *Pipeline, report *Report, name, path string, columns []string, records []T) error {
	if len(records) == 0 {
		report.skip(name, path, "no records")
		p.logger.Info("output skipped: no records", "output", name)
		return nil
	}
	if err := tabular.WriteFile(path, columns, records); err != nil {
		return err
	}
	report.wrote(name, path, len(records))
	p.logger.Info("output written", "output", name, "path", path, "rows", len(records))
	return nil
}

func (p *Pipeline) writeDatabase(ctx context.Context, report *Report, export store.Export, haveData bool) error {
	path := p.cfg.Output.Database
	if path == "" {
		return nil
	}
	if !haveData {
		report.skip(OutputDatabase, path, "no sources available")
		return nil
	}

	s, err := store.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	defer s.Close()

	if err := s.WriteExport(ctx, export); err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}

	rows := len(export.Groups) + len(export.Stories) + len(export.Similar)
	report.wrote(OutputDatabase, path, rows)
	p.logger.Info("database export written", "path", path, "run_id", export.Run.ID, "rows", rows)
	return nil
}
