package service

import (
	"time"

	"github.com/olarrevi/Auto-oferta-applier/internal/domain"
)

// IsCollectible reports whether a listed offer is still open for
// applications. An absent or unparsable deadline keeps the offer
// collectible; a deadline strictly after today does too.
func IsCollectible(deadlineISO string, today time.Time) bool {
	deadline, ok := domain.ParseISO(deadlineISO)
	if !ok {
		return true
	}
	return deadline.After(dateOnly(today))
}

// HorizonReached reports whether the last offer of a listing page is
// old enough to stop paginating: its offer date is on or before
// today minus horizonDays. Offers without a parsable date never stop
// the walk.
func HorizonReached(offerDateISO string, today time.Time, horizonDays int) bool {
	offerDate, ok := domain.ParseISO(offerDateISO)
	if !ok {
		return false
	}
	cutoff := dateOnly(today).AddDate(0, 0, -horizonDays)
	return !offerDate.After(cutoff)
}

// NotifyDecision is the outcome of the date-eligibility check for a
// pending notification.
type NotifyDecision int

const (
	// NotifySend means the offer is still alive and the user should
	// receive the email.
	NotifySend NotifyDecision = iota
	// NotifyDiscard means every known date has passed; mark the score
	// notified without sending anything.
	NotifyDiscard
	// NotifyBlind means no date could be read at all; send anyway so a
	// parsing gap never silently swallows a fit offer.
	NotifyBlind
)

// ShouldNotify applies the notification date checks in priority order:
// the CV deadline from the detail page, then the listing deadline, then
// offer-date recency. The first parsable date decides.
func ShouldNotify(cvDeadlineISO, deadlineISO, offerDateISO string, today time.Time, recencyDays int) NotifyDecision {
	base := dateOnly(today)

	if d, ok := domain.ParseISO(cvDeadlineISO); ok {
		if d.Before(base) {
			return NotifyDiscard
		}
		return NotifySend
	}
	if d, ok := domain.ParseISO(deadlineISO); ok {
		if d.Before(base) {
			return NotifyDiscard
		}
		return NotifySend
	}
	if d, ok := domain.ParseISO(offerDateISO); ok {
		if d.Before(base.AddDate(0, 0, -recencyDays)) {
			return NotifyDiscard
		}
		return NotifySend
	}

	return NotifyBlind
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
