// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/gameflow-harness/internal/logger"
	"github.com/MKhiriev/gameflow-harness/models"
)

const (
	maxRetries = 2
	retryDelay = 50 * time.Millisecond
)

// runRepository is the SQL implementation of [RunRepository]. Calls failing
// with an error the database's classifier marks Retryable are attempted up
// to maxRetries more times.
type runRepository struct {
	logger *logger.Logger
	db     *DB
	delay  time.Duration
}

// NewRunRepository constructs a [RunRepository] backed by db.
func NewRunRepository(db *DB, log *logger.Logger) RunRepository {
	log.Debug().Str("driver", db.driver).Msg("creating run repository")
	return &runRepository{db: db, logger: log, delay: retryDelay}
}

// SaveRun implements [RunRepository]. A zero CreatedAt is set to now.
func (r *runRepository) SaveRun(ctx context.Context, rec models.RunRecord) (int64, error) {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	query, args, err := r.db.insertRunQuery(rec)
	if err != nil {
		return 0, err
	}

	var id int64
	err = r.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&id)
	})
	if err != nil {
		r.logger.Err(err).Str("func", "*runRepository.SaveRun").Str("run_id", rec.RunID).Msg("error saving run")
		if r.isUniqueViolation(err) {
			return 0, ErrRunAlreadyExists
		}
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return id, nil
}

// GetRun implements [RunRepository].
func (r *runRepository) GetRun(ctx context.Context, id int64) (models.RunRecord, error) {
	query, args, err := r.db.selectRunByIDQuery(id)
	if err != nil {
		return models.RunRecord{}, err
	}

	var rec models.RunRecord
	err = r.withRetry(ctx, func(ctx context.Context) error {
		var scanErr error
		rec, scanErr = scanRun(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.RunRecord{}, ErrRunNotFound
	case err != nil:
		r.logger.Err(err).Str("func", "*runRepository.GetRun").Int64("id", id).Msg("error reading run")
		return models.RunRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return rec, nil
}

// ListRuns implements [RunRepository].
func (r *runRepository) ListRuns(ctx context.Context, filter RunFilter) ([]models.RunRecord, error) {
	query, args, err := r.db.selectRunsQuery(filter)
	if err != nil {
		return nil, err
	}

	var runs []models.RunRecord
	err = r.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		runs = runs[:0]
		for rows.Next() {
			rec, err := scanRun(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			runs = append(runs, rec)
		}
		return rows.Err()
	})
	if err != nil {
		r.logger.Err(err).Str("func", "*runRepository.ListRuns").Msg("error listing runs")
		if errors.Is(err, ErrScanningRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return runs, nil
}

func (r *runRepository) withRetry(ctx context.Context, fn retry.RetryFunc) error {
	backoff := retry.WithMaxRetries(maxRetries, retry.NewConstant(r.delay))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && r.db.errorClassificator != nil && r.db.errorClassificator.Classify(err) == Retryable {
			r.logger.Warn().Err(err).Msg("retrying database call")
			return retry.RetryableError(err)
		}
		return err
	})
}

func (r *runRepository) isUniqueViolation(err error) bool {
	return postgresError(err) == pgerrcode.UniqueViolation || isSQLiteUniqueViolation(err)
}

func nanos(n int64) time.Duration {
	return time.Duration(n)
}
