// Stage ordering for the per-(offer, user) lifecycle:
//
//	Listed ──► Detailed ──► Archived ──► Scored ──► Lettered ──► Notified
//	                                        │
//	                                        └──► (not fit: terminal)
//
// Notified and Scored-not-fit are terminal. Stages never move backward;
// every stage checks for its own output before acting, so re-running the
// pipeline from Listed is always safe.
package domain

// Stage is one step in the offer lifecycle. Values are ordered.
type Stage int

const (
	StageListed Stage = iota
	StageDetailed
	StageArchived
	StageScored
	StageLettered
	StageNotified
	// StageDone marks a pair with nothing left to do (notified, or
	// scored not fit).
	StageDone
)

var stageNames = map[Stage]string{
	StageListed:   "listed",
	StageDetailed: "detailed",
	StageArchived: "archived",
	StageScored:   "scored",
	StageLettered: "lettered",
	StageNotified: "notified",
	StageDone:     "done",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "unknown"
}
