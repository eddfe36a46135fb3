// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/gameflow-harness/internal/config"
	"github.com/MKhiriev/gameflow-harness/internal/logger"
	"github.com/MKhiriev/gameflow-harness/models"
)

func newTestRunRepo(t *testing.T, postgres bool) (*runRepository, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	l := logger.Nop()
	db := newSQLiteDB(conn, l)
	if postgres {
		db = newPostgresDB(conn, l)
	}
	return &runRepository{db: db, logger: l, delay: time.Millisecond}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func sampleRun() models.RunRecord {
	return models.RunRecord{
		RunID:             "run-1",
		Worker:            "connection",
		Iteration:         3,
		ConcurrentWorkers: 10,
		StartupTime:       2 * time.Millisecond,
		ExecutionTime:     120 * time.Millisecond,
		Stats: models.Stats{
			Total:       10,
			Succeeded:   9,
			SuccessRate: 0.9,
			Avg:         40 * time.Millisecond,
			Min:         10 * time.Millisecond,
			Max:         90 * time.Millisecond,
		},
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func runRows(rec models.RunRecord) *sqlmock.Rows {
	return sqlmock.NewRows(runColumns).AddRow(
		rec.ID, rec.RunID, rec.Worker, rec.Iteration, rec.ConcurrentWorkers,
		rec.StartupTime.Nanoseconds(), rec.ExecutionTime.Nanoseconds(),
		rec.Stats.Total, rec.Stats.Succeeded, rec.Stats.SuccessRate,
		rec.Stats.Avg.Nanoseconds(), rec.Stats.Min.Nanoseconds(), rec.Stats.Max.Nanoseconds(),
		rec.CreatedAt,
	)
}

// ── SaveRun ──

func TestSaveRun_Success(t *testing.T) {
	repo, mock := newTestRunRepo(t, false)
	rec := sampleRun()

	mock.ExpectQuery(`INSERT INTO run_history .* RETURNING id`).
		WithArgs(rec.RunID, rec.Worker, rec.Iteration, rec.ConcurrentWorkers,
			rec.StartupTime.Nanoseconds(), rec.ExecutionTime.Nanoseconds(),
			rec.Stats.Total, rec.Stats.Succeeded, rec.Stats.SuccessRate,
			rec.Stats.Avg.Nanoseconds(), rec.Stats.Min.Nanoseconds(), rec.Stats.Max.Nanoseconds(),
			rec.CreatedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	id, err := repo.SaveRun(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveRun_UniqueViolation(t *testing.T) {
	repo, mock := newTestRunRepo(t, true)

	mock.ExpectQuery(`INSERT INTO run_history`).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.SaveRun(context.Background(), sampleRun())
	assert.ErrorIs(t, err, ErrRunAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveRun_RetriesTransientError(t *testing.T) {
	repo, mock := newTestRunRepo(t, true)

	mock.ExpectQuery(`INSERT INTO run_history`).
		WillReturnError(pgError(pgerrcode.DeadlockDetected))
	mock.ExpectQuery(`INSERT INTO run_history`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	id, err := repo.SaveRun(context.Background(), sampleRun())
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveRun_GivesUpAfterRetries(t *testing.T) {
	repo, mock := newTestRunRepo(t, true)

	for range maxRetries + 1 {
		mock.ExpectQuery(`INSERT INTO run_history`).
			WillReturnError(pgError(pgerrcode.ConnectionFailure))
	}

	_, err := repo.SaveRun(context.Background(), sampleRun())
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveRun_NonRetryableFailsOnce(t *testing.T) {
	repo, mock := newTestRunRepo(t, true)

	mock.ExpectQuery(`INSERT INTO run_history`).
		WillReturnError(pgError(pgerrcode.SyntaxError))

	_, err := repo.SaveRun(context.Background(), sampleRun())
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveRun_SetsCreatedAt(t *testing.T) {
	repo, mock := newTestRunRepo(t, false)
	rec := sampleRun()
	rec.CreatedAt = time.Time{}

	mock.ExpectQuery(`INSERT INTO run_history`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			notZeroTime{}).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	_, err := repo.SaveRun(context.Background(), rec)
	require.NoError(t, err)
}

type notZeroTime struct{}

func (notZeroTime) Match(v driver.Value) bool {
	ts, ok := v.(time.Time)
	return ok && !ts.IsZero()
}

// ── GetRun / ListRuns ──

func TestGetRun_Found(t *testing.T) {
	repo, mock := newTestRunRepo(t, true)
	rec := sampleRun()
	rec.ID = 5

	mock.ExpectQuery(`SELECT .* FROM run_history WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(runRows(rec))

	got, err := repo.GetRun(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestGetRun_NotFound(t *testing.T) {
	repo, mock := newTestRunRepo(t, false)

	mock.ExpectQuery(`SELECT .* FROM run_history WHERE id = \?`).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetRun(context.Background(), 9)
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestListRuns_Filters(t *testing.T) {
	repo, mock := newTestRunRepo(t, true)
	a, b := sampleRun(), sampleRun()
	a.ID, b.ID = 2, 1

	mock.ExpectQuery(`SELECT .* FROM run_history WHERE run_id = \$1 AND worker = \$2 ORDER BY id DESC LIMIT 2`).
		WithArgs("run-1", "connection").
		WillReturnRows(runRows(a).AddRow(
			b.ID, b.RunID, b.Worker, b.Iteration, b.ConcurrentWorkers,
			b.StartupTime.Nanoseconds(), b.ExecutionTime.Nanoseconds(),
			b.Stats.Total, b.Stats.Succeeded, b.Stats.SuccessRate,
			b.Stats.Avg.Nanoseconds(), b.Stats.Min.Nanoseconds(), b.Stats.Max.Nanoseconds(),
			b.CreatedAt,
		))

	runs, err := repo.ListRuns(context.Background(), RunFilter{RunID: "run-1", Worker: "connection", Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []models.RunRecord{a, b}, runs)
}

func TestListRuns_QueryError(t *testing.T) {
	repo, mock := newTestRunRepo(t, false)

	mock.ExpectQuery(`SELECT .* FROM run_history ORDER BY id DESC`).
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.ListRuns(context.Background(), RunFilter{})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListRuns_ScanError(t *testing.T) {
	repo, mock := newTestRunRepo(t, false)

	mock.ExpectQuery(`SELECT .* FROM run_history`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	_, err := repo.ListRuns(context.Background(), RunFilter{})
	assert.ErrorIs(t, err, ErrScanningRows)
}

// ── classifiers ──

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		err  error
		want ErrorClassification
	}{
		{nil, NonRetryable},
		{errors.New("plain"), NonRetryable},
		{pgError(pgerrcode.SerializationFailure), Retryable},
		{pgError(pgerrcode.CannotConnectNow), Retryable},
		{pgError(pgerrcode.ConnectionException), Retryable},
		{pgError(pgerrcode.UniqueViolation), NonRetryable},
		{pgError(pgerrcode.UndefinedTable), NonRetryable},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, c.Classify(tc.err), "%v", tc.err)
	}
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := SQLiteErrorClassifier{}
	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrLocked}))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("x")))
}

func TestSQLiteFile(t *testing.T) {
	assert.Equal(t, "", sqliteFile(":memory:"))
	assert.Equal(t, "", sqliteFile("file::memory:?cache=shared"))
	assert.Equal(t, "", sqliteFile("file:runs?mode=memory"))
	assert.Equal(t, "runs.db", sqliteFile("runs.db"))
	assert.Equal(t, "/tmp/runs.db", sqliteFile("file:/tmp/runs.db?_busy_timeout=5000"))
}

// ── real sqlite ──

func TestStorages_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "runs.db")

	s, err := NewStorages(ctx, config.DB{DSN: dsn, Driver: config.DBDriverSQLite}, logger.Nop())
	require.NoError(t, err)
	defer func() { require.NoError(t, s.Close()) }()

	rec := sampleRun()
	id, err := s.RunRepository.SaveRun(ctx, rec)
	require.NoError(t, err)
	require.Positive(t, id)

	_, err = s.RunRepository.SaveRun(ctx, rec)
	assert.ErrorIs(t, err, ErrRunAlreadyExists)

	second := rec
	second.Iteration = 4
	_, err = s.RunRepository.SaveRun(ctx, second)
	require.NoError(t, err)

	got, err := s.RunRepository.GetRun(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, rec.Stats, got.Stats)
	assert.Equal(t, rec.ExecutionTime, got.ExecutionTime)
	assert.True(t, rec.CreatedAt.Equal(got.CreatedAt))

	runs, err := s.RunRepository.ListRuns(ctx, RunFilter{RunID: "run-1"})
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, 4, runs[0].Iteration)

	_, err = s.RunRepository.GetRun(ctx, 999)
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestNewDB_UnsupportedDriver(t *testing.T) {
	_, err := NewDB(context.Background(), config.DB{DSN: "x", Driver: "mysql"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}
