package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/roach88/kanjiparse/internal/similarity"
	"github.com/roach88/kanjiparse/internal/story"
)

// Run identifies one pipeline execution.
type Run struct {
	ID             string
	StartedAt      time.Time
	WorkbookPath   string
	DictionaryPath string
}

// Export is everything a run produced. Nil collections are simply not
// written.
type Export struct {
	Run     Run
	Groups  []story.GroupRecord
	Stories []story.Record
	Similar []similarity.Group
}

// WriteExport stores the run and all of its rows in one transaction.
// Either the whole export lands or nothing does.
func (s *Store) WriteExport(ctx context.Context, e Export) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write export: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO import_runs (id, started_at, workbook_path, dictionary_path)
		VALUES (?, ?, ?, ?)
	`,
		e.Run.ID,
		e.Run.StartedAt.UTC().Format(time.RFC3339),
		e.Run.WorkbookPath,
		e.Run.DictionaryPath,
	); err != nil {
		return fmt.Errorf("write export: run: %w", err)
	}

	if err := insertGroups(ctx, tx, e.Run.ID, e.Groups); err != nil {
		return err
	}
	if err := insertStories(ctx, tx, e.Run.ID, e.Stories); err != nil {
		return err
	}
	if err := insertSimilar(ctx, tx, e.Run.ID, e.Similar); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write export: commit: %w", err)
	}
	return nil
}

func insertGroups(ctx context.Context, tx *sql.Tx, runID string, groups []story.GroupRecord) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO story_groups
		(run_id, seq, group_number, group_identity, group_meaning, group_story_text, reading)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("write export: prepare story_groups: %w", err)
	}
	defer stmt.Close()

	for i, g := range groups {
		if _, err := stmt.ExecContext(ctx,
			runID, i+1, g.GroupNumber, g.GroupIdentity, g.GroupMeaning, g.GroupStoryText, g.Reading,
		); err != nil {
			return fmt.Errorf("write export: story group %q: %w", g.GroupIdentity, err)
		}
	}
	return nil
}

func insertStories(ctx context.Context, tx *sql.Tx, runID string, stories []story.Record) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO stories
		(run_id, seq, group_identity, member_number, display_identity, canonical_identity,
		 meaning, story_text, frame_number, reading)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("write export: prepare stories: %w", err)
	}
	defer stmt.Close()

	for i, r := range stories {
		if _, err := stmt.ExecContext(ctx,
			runID, i+1, r.GroupIdentity, r.MemberNumber, r.DisplayIdentity, r.CanonicalIdentity,
			r.Meaning, r.StoryText, r.FrameNumber, r.Reading,
		); err != nil {
			return fmt.Errorf("write export: story %q: %w", r.DisplayIdentity, err)
		}
	}
	return nil
}

func insertSimilar(ctx context.Context, tx *sql.Tx, runID string, groups []similarity.Group) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO similarity_groups
		(run_id, seq, group_type, group_key, group_label, member_characters, member_count)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("write export: prepare similarity_groups: %w", err)
	}
	defer stmt.Close()

	for i, g := range groups {
		if _, err := stmt.ExecContext(ctx,
			runID, i+1, string(g.Type), g.Key, g.Label, strings.Join(g.Members, ","), g.Count(),
		); err != nil {
			return fmt.Errorf("write export: similarity group %s/%s: %w", g.Type, g.Key, err)
		}
	}
	return nil
}
