package types

import "sort"

// RunSummary aggregates the end-of-stream counters and the missing-codes
// journal handed to an emitter once a streaming driver run completes
// (§4.7, §7). It is purely diagnostic; nothing in the decode path depends
// on its contents.
type RunSummary struct {
	LinesSeen        int            `json:"lines_seen"`
	LinesAdmitted    int            `json:"lines_admitted"`
	RecordsEmitted   int            `json:"records_emitted"`
	LinesSkipped     int            `json:"lines_skipped"`
	ItemIndexHits    int            `json:"item_index_hits"`
	ItemIndexMisses  int            `json:"item_index_misses"`
	MissingCodes     map[int]string `json:"missing_codes,omitempty"` // line number -> comma-joined tags
}

// NewRunSummary returns a zeroed summary with its journal initialised.
func NewRunSummary() *RunSummary {
	return &RunSummary{MissingCodes: make(map[int]string)}
}

// RecordMissing appends tag to the journal entry for lineNo, creating it
// if absent.
func (s *RunSummary) RecordMissing(lineNo int, tag string) {
	if existing, ok := s.MissingCodes[lineNo]; ok {
		s.MissingCodes[lineNo] = existing + "," + tag
	} else {
		s.MissingCodes[lineNo] = tag
	}
}

// SortedMissingLines returns the line numbers with journal entries, in
// ascending order, for stable summary output.
func (s *RunSummary) SortedMissingLines() []int {
	lines := make([]int, 0, len(s.MissingCodes))
	for ln := range s.MissingCodes {
		lines = append(lines, ln)
	}
	sort.Ints(lines)
	return lines
}
