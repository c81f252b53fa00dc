package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/roach88/kanjiparse/internal/similarity"
	"github.com/roach88/kanjiparse/internal/story"
)

// Counts is the number of rows a run exported per table.
type Counts struct {
	StoryGroups      int
	Stories          int
	SimilarityGroups int
}

// RunIDs returns all run ids, oldest first.
func (s *Store) RunIDs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id FROM import_runs
		ORDER BY started_at ASC, id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return ids, nil
}

// CountRows returns per-table row counts for a run.
func (s *Store) CountRows(ctx context.Context, runID string) (Counts, error) {
	var c Counts
	err := s.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM story_groups WHERE run_id = ?),
			(SELECT COUNT(*) FROM stories WHERE run_id = ?),
			(SELECT COUNT(*) FROM similarity_groups WHERE run_id = ?)
	`, runID, runID, runID).Scan(&c.StoryGroups, &c.Stories, &c.SimilarityGroups)
	if err != nil {
		return Counts{}, fmt.Errorf("count rows: %w", err)
	}
	return c, nil
}

// ReadStories returns a run's stories in export order.
func (s *Store) ReadStories(ctx context.Context, runID string) ([]story.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT group_identity, member_number, display_identity, canonical_identity,
		       meaning, story_text, frame_number, reading
		FROM stories
		WHERE run_id = ?
		ORDER BY seq ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query stories: %w", err)
	}
	defer rows.Close()

	records := []story.Record{}
	for rows.Next() {
		var r story.Record
		if err := rows.Scan(
			&r.GroupIdentity, &r.MemberNumber, &r.DisplayIdentity, &r.CanonicalIdentity,
			&r.Meaning, &r.StoryText, &r.FrameNumber, &r.Reading,
		); err != nil {
			return nil, fmt.Errorf("scan story: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stories: %w", err)
	}
	return records, nil
}

// ReadSimilarityGroups returns a run's similarity groups in export order.
func (s *Store) ReadSimilarityGroups(ctx context.Context, runID string) ([]similarity.Group, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT group_type, group_key, group_label, member_characters
		FROM similarity_groups
		WHERE run_id = ?
		ORDER BY seq ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query similarity groups: %w", err)
	}
	defer rows.Close()

	groups := []similarity.Group{}
	for rows.Next() {
		var (
			g       similarity.Group
			typ     string
			members string
		)
		if err := rows.Scan(&typ, &g.Key, &g.Label, &members); err != nil {
			return nil, fmt.Errorf("scan similarity group: %w", err)
		}
		g.Type = similarity.Type(typ)
		if members != "" {
			g.Members = strings.Split(members, ",")
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate similarity groups: %w", err)
	}
	return groups, nil
}
