package tracker

import "time"

// TimeSlice is one contiguous local working interval. A zero EndedAt
// means the slice is still open; an empty RemoteID means it has never
// been persisted remotely. Slices are values: every mutation returns a
// new slice, the original is never touched.
type TimeSlice struct {
	StartedAt time.Time
	EndedAt   time.Time
	RemoteID  string
}

func (s TimeSlice) Open() bool {
	return s.EndedAt.IsZero()
}

// WithEnd returns a copy of the slice closed at end.
func (s TimeSlice) WithEnd(end time.Time) TimeSlice {
	s.EndedAt = end
	return s
}

// WithRemoteID returns a copy of the slice linked to a remote entry.
func (s TimeSlice) WithRemoteID(id string) TimeSlice {
	s.RemoteID = id
	return s
}

// TimeSpent reports the working time the slice covers. Open slices are
// measured up to now.
func (s TimeSlice) TimeSpent(now time.Time) time.Duration {
	if s.Open() {
		return now.Sub(s.StartedAt)
	}
	return s.EndedAt.Sub(s.StartedAt)
}
