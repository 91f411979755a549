package quota

import (
	"context"
	"time"

	"github.com/audiomint/backend/ent"
	"github.com/audiomint/backend/ent/usagelog"
	"github.com/audiomint/backend/pkg/domain"
)

// Store keeps one usage row per user per calendar day. All mutations are
// single SQL statements, so concurrent callers never lose an increment.
type Store struct {
	client *ent.Client
	loc    *time.Location
	now    func() time.Time
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLocation sets the timezone calendar days are counted in. Default UTC.
func WithLocation(loc *time.Location) StoreOption {
	return func(s *Store) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// NewStore creates a usage store.
func NewStore(client *ent.Client, opts ...StoreOption) *Store {
	s := &Store{client: client, loc: time.UTC, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Day returns the current calendar day as UTC midnight.
func (s *Store) Day() time.Time {
	y, m, d := s.now().In(s.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the user's usage row for the current day, creating it if needed.
func (s *Store) Today(ctx context.Context, userID int) (*ent.UsageLog, error) {
	day := s.Day()
	if err := s.ensure(ctx, userID, day); err != nil {
		return nil, err
	}
	return s.load(ctx, userID, day)
}

// Peek returns the user's usage for the current day without writing. A day with
// no row yet reads as zero counters.
func (s *Store) Peek(ctx context.Context, userID int) (*ent.UsageLog, error) {
	day := s.Day()
	row, err := s.client.UsageLog.Query().
		Where(usagelog.UserID(userID), usagelog.Date(day)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return &ent.UsageLog{UserID: userID, Date: day}, nil
	}
	if err != nil {
		return nil, domain.StoreUnavailable(err)
	}
	return row, nil
}

// AddGeneration charges one generation of seconds to today's row and returns the
// row after the increment.
func (s *Store) AddGeneration(ctx context.Context, userID, seconds int) (*ent.UsageLog, error) {
	if seconds < 0 {
		seconds = 0
	}
	day := s.Day()
	if err := s.ensure(ctx, userID, day); err != nil {
		return nil, err
	}

	err := s.client.UsageLog.Update().
		Where(usagelog.UserID(userID), usagelog.Date(day)).
		AddAudioGenerations(1).
		AddTotalDuration(seconds).
		Exec(ctx)
	if err != nil {
		return nil, domain.StoreUnavailable(err)
	}
	return s.load(ctx, userID, day)
}

// AddAPICall counts one programmatic request against today's row.
func (s *Store) AddAPICall(ctx context.Context, userID int) error {
	day := s.Day()
	if err := s.ensure(ctx, userID, day); err != nil {
		return err
	}

	err := s.client.UsageLog.Update().
		Where(usagelog.UserID(userID), usagelog.Date(day)).
		AddAPICalls(1).
		Exec(ctx)
	return domain.StoreUnavailable(err)
}

// History returns the user's most recent usage rows, newest first.
func (s *Store) History(ctx context.Context, userID, days int) ([]*ent.UsageLog, error) {
	rows, err := s.client.UsageLog.Query().
		Where(usagelog.UserID(userID)).
		Order(ent.Desc(usagelog.FieldDate)).
		Limit(days).
		All(ctx)
	if err != nil {
		return nil, domain.StoreUnavailable(err)
	}
	return rows, nil
}

// ensure inserts a zero row for (userID, day), doing nothing if it already exists.
func (s *Store) ensure(ctx context.Context, userID int, day time.Time) error {
	err := s.client.UsageLog.Create().
		SetUserID(userID).
		SetDate(day).
		OnConflictColumns(usagelog.FieldUserID, usagelog.FieldDate).
		Ignore().
		Exec(ctx)
	return domain.StoreUnavailable(err)
}

func (s *Store) load(ctx context.Context, userID int, day time.Time) (*ent.UsageLog, error) {
	row, err := s.client.UsageLog.Query().
		Where(usagelog.UserID(userID), usagelog.Date(day)).
		Only(ctx)
	if err != nil {
		return nil, domain.StoreUnavailable(err)
	}
	return row, nil
}
