package repository

import (
	"context"
	"database/sql"

	"shadowpulse/internal/model"
)

type ReportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) SaveReport(ctx context.Context, entry *model.ReportLog) error {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO report_log(topic, generated_at, headline_count, size_bytes, summary)
		VALUES($1, $2, $3, $4, $5)
		RETURNING id
	`, entry.Topic, entry.GeneratedAt, entry.HeadlineCount, entry.SizeBytes, entry.Summary).Scan(&id)

	if err != nil {
		return err
	}

	entry.ID = id
	return nil
}

func (r *ReportRepository) GetRecentReports(ctx context.Context, limit int) ([]model.ReportLog, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, topic, generated_at, headline_count, size_bytes, summary
		FROM report_log
		ORDER BY generated_at DESC
		LIMIT $1
	`, limit)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []model.ReportLog
	for rows.Next() {
		var l model.ReportLog
		err := rows.Scan(&l.ID, &l.Topic, &l.GeneratedAt, &l.HeadlineCount, &l.SizeBytes, &l.Summary)
		if err != nil {
			return nil, err
		}
		reports = append(reports, l)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}

func (r *ReportRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
