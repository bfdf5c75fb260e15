package account

import (
	"time"

	"github.com/amirasaad/ledger/pkg/money"
	"github.com/google/uuid"
)

// Entry is a snapshot of an applied transaction.
// Timestamp is the instant the entry was recorded, in UTC.
type Entry struct {
	ID        uuid.UUID
	Kind      Kind
	Amount    money.Money
	Timestamp time.Time
}

// Log is the append-only, chronologically ordered record of an account's
// applied transactions. It is not safe for concurrent use on its own; the
// owning Account serializes access to it.
type Log struct {
	entries []Entry
}

func (l *Log) append(e Entry) {
	l.entries = append(l.entries, e)
}

// Len returns the number of recorded entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the entries in insertion order.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// CountWhere scans the whole log and counts entries matching pred.
func (l *Log) CountWhere(pred func(Entry) bool) int {
	n := 0
	for _, e := range l.entries {
		if pred(e) {
			n++
		}
	}
	return n
}

func (l *Log) clone() *Log {
	return &Log{entries: l.Entries()}
}

// OfKind matches entries with the given kind.
func OfKind(k Kind) func(Entry) bool {
	return func(e Entry) bool { return e.Kind == k }
}

// OnDay matches entries recorded on the same calendar day as now, evaluated
// in now's location.
func OnDay(now time.Time) func(Entry) bool {
	y, m, d := now.Date()
	loc := now.Location()
	return func(e Entry) bool {
		ey, em, ed := e.Timestamp.In(loc).Date()
		return ey == y && em == m && ed == d
	}
}

// And combines predicates.
func And(preds ...func(Entry) bool) func(Entry) bool {
	return func(e Entry) bool {
		for _, p := range preds {
			if !p(e) {
				return false
			}
		}
		return true
	}
}
