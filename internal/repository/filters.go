package repository

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

// psql builds every query with $n placeholders, which both lib/pq and the
// SQLite test driver accept.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	DateRangeWeek  = "week"
	DateRangeMonth = "month"
)

// PostFilters narrows post queries. The zero value of each field means "no
// constraint". DateRange values other than "week" and "month" are ignored.
type PostFilters struct {
	BrandID   string
	Status    string
	DateRange string
}

// Cutoff resolves the date window into an inclusive created_at lower bound.
func (f PostFilters) Cutoff(now time.Time) (time.Time, bool) {
	switch f.DateRange {
	case DateRangeWeek:
		return now.AddDate(0, 0, -7), true
	case DateRangeMonth:
		// One calendar month, not a flat 30 days.
		return now.AddDate(0, -1, 0), true
	}
	return time.Time{}, false
}

// apply appends the optional predicates to a select over a post table
// aliased as alias. Every caller composes the same predicate shape, so the
// per-platform aggregates stay directly comparable.
func (f PostFilters) apply(b sq.SelectBuilder, alias string, now time.Time) sq.SelectBuilder {
	if f.BrandID != "" {
		b = b.Where(sq.Eq{alias + ".brand_id": f.BrandID})
	}
	if f.Status != "" {
		b = b.Where(sq.Eq{alias + ".status": f.Status})
	}
	if cutoff, ok := f.Cutoff(now); ok {
		b = b.Where(sq.GtOrEq{alias + ".created_at": cutoff})
	}
	return b
}
