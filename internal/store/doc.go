// Package store exports a finished run into a SQLite database for
// downstream loading.
//
// Each run is recorded in import_runs under a UUID and every exported row
// carries that run_id, so a database can hold several runs side by side.
// Rows keep their output order in a seq column and every read orders by
// seq, which makes reads deterministic.
//
// # Constraints
//
//   - stories: PRIMARY KEY(run_id, display_identity) mirrors the uniqueness
//     of display identities within a run
//   - story_groups: PRIMARY KEY(run_id, group_identity)
//   - similarity_groups: PRIMARY KEY(run_id, group_type, group_key)
//
// # Database Configuration
//
//   - WAL mode
//   - synchronous=NORMAL
//   - busy_timeout=5000
//   - foreign_keys=ON
package store
