// Package pipeline wires the extractors, the identity resolver, the group
// synthesizer and the writers into one batch run.
//
// Recovery happens at the narrowest scope. A bad row or entry is dropped
// and counted; a missing or unparseable source skips the outputs that
// depend on it and is recorded in the Report; only an output that cannot be
// written aborts the run.
package pipeline
