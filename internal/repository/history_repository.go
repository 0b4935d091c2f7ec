package repository

import (
	"database/sql"

	"github.com/DMF-1TEAM/Issue-beat/internal/model"
)

type HistoryRepository struct {
	db *sql.DB
}

func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// RecordSearch bumps the counter for keyword, creating the row on first
// search. The upsert is atomic so concurrent searches never lose counts.
func (r *HistoryRepository) RecordSearch(keyword string) error {
	_, err := r.db.Exec(`
		INSERT INTO search_history(keyword, count, last_searched)
		VALUES($1, 1, now())
		ON CONFLICT (keyword) DO UPDATE
		SET count = search_history.count + 1, last_searched = now()
	`, keyword)
	return err
}

// Trending returns the most-searched keywords, highest count first.
func (r *HistoryRepository) Trending(limit int) ([]model.SearchHistory, error) {
	rows, err := r.db.Query(`
		SELECT id, keyword, count, last_searched
		FROM search_history
		ORDER BY count DESC, last_searched DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []model.SearchHistory
	for rows.Next() {
		var h model.SearchHistory
		if err := rows.Scan(&h.ID, &h.Keyword, &h.Count, &h.LastSearched); err != nil {
			return nil, err
		}
		history = append(history, h)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
