package domain

import "time"

// RunStats holds counters for one pipeline run.
type RunStats struct {
	Fetched    int
	New        int
	Detailed   int
	Archived   int
	Scored     int
	Lettered   int
	Rendered   int
	Drafted    int
	Notified   int
	Discarded  int
	Skipped    int
	Errors     int
	Duration   time.Duration
}
