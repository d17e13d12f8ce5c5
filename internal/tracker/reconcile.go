package tracker

import (
	"sort"
	"time"

	"github.com/1M4nt0/solidtime-tracker/internal/api"
	"github.com/1M4nt0/solidtime-tracker/internal/timeutil"
)

// resumableEntry decides whether one of today's remote entries may be
// treated as the continuation of the tracked project's session.
//
// The entry with the latest start across all projects rules: if it
// belongs to a different project, the user has demonstrably moved on
// and nothing is resumable. Otherwise the latest entry is resumable
// when it is still open remotely, or closed no longer than maxSpan ago.
func resumableEntry(entries []api.TimeEntry, projectID string, now time.Time, maxSpan time.Duration) *api.TimeEntry {
	if len(entries) == 0 {
		return nil
	}

	sorted := make([]api.TimeEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return entryStart(sorted[i]).Before(entryStart(sorted[j]))
	})

	last := sorted[len(sorted)-1]
	if last.ProjectID == nil || *last.ProjectID != projectID {
		return nil
	}

	hasProjectEntries := false
	for _, e := range sorted {
		if e.ProjectID != nil && *e.ProjectID == projectID {
			hasProjectEntries = true
			break
		}
	}
	if !hasProjectEntries {
		return nil
	}

	if !entryResumable(last, now, maxSpan) {
		return nil
	}
	return &last
}

// entryResumable reports whether an entry is recent enough to continue:
// either still open remotely, or ended within maxSpan of now.
func entryResumable(entry api.TimeEntry, now time.Time, maxSpan time.Duration) bool {
	if entry.End == nil {
		return true
	}
	end, err := timeutil.ParseUTC(*entry.End)
	if err != nil {
		return false
	}
	return end.After(now.Add(-maxSpan))
}

// entryStart parses an entry's start for ordering. Unparseable starts
// sort first, so they never win the latest-entry comparison.
func entryStart(entry api.TimeEntry) time.Time {
	start, err := timeutil.ParseUTC(entry.Start)
	if err != nil {
		return time.Time{}
	}
	return start
}
