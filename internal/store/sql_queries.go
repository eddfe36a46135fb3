// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/gameflow-harness/models"
)

const runTable = "run_history"

// runColumns are selected in this order by scanRun.
var runColumns = []string{
	"id",
	"run_id",
	"worker",
	"iteration",
	"concurrent_workers",
	"startup_ns",
	"execution_ns",
	"total",
	"succeeded",
	"success_rate",
	"avg_ns",
	"min_ns",
	"max_ns",
	"created_at",
}

func (db *DB) insertRunQuery(rec models.RunRecord) (string, []any, error) {
	query, args, err := db.builder.
		Insert(runTable).
		Columns(runColumns[1:]...).
		Values(
			rec.RunID,
			rec.Worker,
			rec.Iteration,
			rec.ConcurrentWorkers,
			rec.StartupTime.Nanoseconds(),
			rec.ExecutionTime.Nanoseconds(),
			rec.Stats.Total,
			rec.Stats.Succeeded,
			rec.Stats.SuccessRate,
			rec.Stats.Avg.Nanoseconds(),
			rec.Stats.Min.Nanoseconds(),
			rec.Stats.Max.Nanoseconds(),
			rec.CreatedAt,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) selectRunByIDQuery(id int64) (string, []any, error) {
	query, args, err := db.builder.
		Select(runColumns...).
		From(runTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) selectRunsQuery(filter RunFilter) (string, []any, error) {
	q := db.builder.
		Select(runColumns...).
		From(runTable).
		OrderBy("id DESC")

	if filter.RunID != "" {
		q = q.Where(sq.Eq{"run_id": filter.RunID})
	}
	if filter.Worker != "" {
		q = q.Where(sq.Eq{"worker": filter.Worker})
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (models.RunRecord, error) {
	var (
		rec                             models.RunRecord
		startup, execution, avg, mn, mx int64
	)
	err := row.Scan(
		&rec.ID,
		&rec.RunID,
		&rec.Worker,
		&rec.Iteration,
		&rec.ConcurrentWorkers,
		&startup,
		&execution,
		&rec.Stats.Total,
		&rec.Stats.Succeeded,
		&rec.Stats.SuccessRate,
		&avg,
		&mn,
		&mx,
		&rec.CreatedAt,
	)
	if err != nil {
		return models.RunRecord{}, err
	}

	rec.StartupTime = nanos(startup)
	rec.ExecutionTime = nanos(execution)
	rec.Stats.Avg = nanos(avg)
	rec.Stats.Min = nanos(mn)
	rec.Stats.Max = nanos(mx)
	return rec, nil
}
