// Package store owns the per-user working collection of expenses: the
// in-memory list the dashboard renders from, kept in sync with the remote
// service as far as it cooperates. Failures never escape; every operation
// falls back to a local mutation and reports success or failure via a flag.
package store

import (
	"context"
	"time"

	"go.uber.org/zap"

	"max.ks1230/expense-dashboard/internal/entity/currency"
	"max.ks1230/expense-dashboard/internal/entity/expense"
	"max.ks1230/expense-dashboard/internal/logger"
)

type expensesAPI interface {
	List(ctx context.Context) ([]expense.Record, error)
	Convert(ctx context.Context, target string) ([]expense.Record, error)
	Create(ctx context.Context, rec expense.Record) (expense.Record, error)
	Update(ctx context.Context, id int64, rec expense.Record) (expense.Record, error)
	Delete(ctx context.Context, id int64) error
}

type config interface {
	HomeCurrency() string
}

type session struct {
	expenses []expense.Record
	currency string
	loaded   bool
}

type Service struct {
	api      expensesAPI
	home     string
	sessions map[int64]*session
}

func New(api expensesAPI, cfg config) *Service {
	home := cfg.HomeCurrency()
	if home == "" {
		home = currency.Default
	}
	return &Service{
		api:      api,
		home:     home,
		sessions: make(map[int64]*session),
	}
}

func (s *Service) session(userID int64) *session {
	sess, ok := s.sessions[userID]
	if !ok {
		sess = &session{expenses: []expense.Record{}, currency: s.home}
		s.sessions[userID] = sess
	}
	return sess
}

// Expenses returns the user's working collection, loading it on first use.
func (s *Service) Expenses(ctx context.Context, userID int64) []expense.Record {
	sess := s.session(userID)
	if !sess.loaded {
		s.Load(ctx, userID)
	}
	return sess.expenses
}

func (s *Service) SelectedCurrency(userID int64) string {
	return s.session(userID).currency
}

func (s *Service) HomeCurrency() string {
	return s.home
}

// Load replaces the working collection with the server's list. On failure
// the collection becomes empty; no synthetic records are fabricated.
func (s *Service) Load(ctx context.Context, userID int64) (int, bool) {
	sess := s.session(userID)
	sess.loaded = true

	records, err := s.api.List(ctx)
	if err != nil {
		logger.Warn("load expenses failed, starting empty",
			zap.Int64("userID", userID), zap.Error(err))
		sess.expenses = []expense.Record{}
		return 0, false
	}
	sess.expenses = records
	return len(records), true
}

// Add submits the candidate record. When the server cannot be reached the
// record is appended anyway with a millisecond-timestamp ID and local
// timestamps, so the user's action is never silently lost. Such records do
// not reconcile with the server.
func (s *Service) Add(ctx context.Context, userID int64, rec expense.Record) (expense.Record, bool) {
	sess := s.session(userID)

	saved, err := s.api.Create(ctx, rec)
	if err != nil {
		logger.Warn("create expense failed, storing locally",
			zap.Int64("userID", userID), zap.Error(err))
		stamp := time.Now().UTC()
		rec.ID = stamp.UnixMilli()
		rec.CreatedAt = stamp.Format(time.RFC3339)
		rec.UpdatedAt = stamp.Format(time.RFC3339)
		sess.expenses = append(sess.expenses, rec)
		return rec, false
	}

	sess.expenses = append(sess.expenses, saved)
	return saved, true
}

// Update replaces the record with rec.ID wholesale. A record without an ID
// cannot be updated; that is a client-side guard, not a remote error. On
// server failure the record is replaced with a now-stamped local copy.
func (s *Service) Update(ctx context.Context, userID int64, rec expense.Record) (expense.Record, bool, error) {
	if rec.ID == 0 {
		return expense.Record{}, false, errMissingID
	}
	sess := s.session(userID)

	saved, err := s.api.Update(ctx, rec.ID, rec)
	ok := err == nil
	if err != nil {
		logger.Warn("update expense failed, updating locally",
			zap.Int64("userID", userID), zap.Int64("id", rec.ID), zap.Error(err))
		stamp := time.Now().UTC().Format(time.RFC3339)
		saved = rec
		saved.CreatedAt = stamp
		saved.UpdatedAt = stamp
	}

	for i := range sess.expenses {
		if sess.expenses[i].ID == rec.ID {
			sess.expenses[i] = saved
			break
		}
	}
	return saved, ok, nil
}

// Delete removes id from the working collection whatever the server says.
// The removal is optimistic and never rolled back.
func (s *Service) Delete(ctx context.Context, userID, id int64) bool {
	sess := s.session(userID)

	err := s.api.Delete(ctx, id)
	if err != nil {
		logger.Warn("delete expense failed, removing locally",
			zap.Int64("userID", userID), zap.Int64("id", id), zap.Error(err))
	}

	kept := sess.expenses[:0]
	for _, rec := range sess.expenses {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	sess.expenses = kept
	return err == nil
}

// Convert asks the server for the collection denominated in target. A
// non-empty answer replaces the working collection; an empty answer or a
// failure leaves it untouched. The selected currency changes either way,
// so amounts may stay labeled with a currency they were never converted to.
func (s *Service) Convert(ctx context.Context, userID int64, target string) bool {
	sess := s.session(userID)

	converted, err := s.api.Convert(ctx, target)
	if err != nil {
		logger.Warn("currency conversion failed, keeping working set",
			zap.Int64("userID", userID), zap.String("target", target), zap.Error(err))
		converted = nil
	}

	sess.currency = target
	if len(converted) == 0 {
		return false
	}
	sess.expenses = converted
	return true
}
