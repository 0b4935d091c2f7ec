package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/DMF-1TEAM/Issue-beat/internal/model"
)

type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

const articleColumns = "id, date, title, press, author, content, keyword, image, link"

// Search returns articles whose title or content contains keyword,
// case-insensitive, newest first. An empty keyword matches everything.
// from/to restrict the publish date to an inclusive range when set.
func (r *ArticleRepository) Search(keyword string, from, to *time.Time) ([]model.Article, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM news
		WHERE (title ILIKE '%%' || $1 || '%%' OR content ILIKE '%%' || $1 || '%%')
	`, articleColumns)

	args := []interface{}{keyword}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	query += " ORDER BY date DESC, id DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanArticles(rows)
}

// SearchPage is the paginated variant used by the news list endpoint.
// date narrows the result to a single publish date.
func (r *ArticleRepository) SearchPage(keyword string, date *time.Time, page, pageSize int) ([]model.Article, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM news
		WHERE (title ILIKE '%%' || $1 || '%%' OR content ILIKE '%%' || $1 || '%%')
	`, articleColumns)

	args := []interface{}{keyword}
	if date != nil {
		args = append(args, *date)
		query += fmt.Sprintf(" AND date = $%d", len(args))
	}

	args = append(args, pageSize, (page-1)*pageSize)
	query += fmt.Sprintf(" ORDER BY date DESC, id DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanArticles(rows)
}

// CountSearch counts the rows SearchPage pages over.
func (r *ArticleRepository) CountSearch(keyword string, date *time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM news
		WHERE (title ILIKE '%' || $1 || '%' OR content ILIKE '%' || $1 || '%')
	`

	args := []interface{}{keyword}
	if date != nil {
		args = append(args, *date)
		query += fmt.Sprintf(" AND date = $%d", len(args))
	}

	var total int
	err := r.db.QueryRow(query, args...).Scan(&total)
	return total, err
}

// SuggestTitles returns up to limit distinct titles containing prefix.
func (r *ArticleRepository) SuggestTitles(prefix string, limit int) ([]string, error) {
	rows, err := r.db.Query(`
		SELECT DISTINCT title FROM news
		WHERE title ILIKE '%' || $1 || '%'
		LIMIT $2
	`, prefix, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, err
		}
		titles = append(titles, title)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return titles, nil
}

func scanArticles(rows *sql.Rows) ([]model.Article, error) {
	var articles []model.Article
	for rows.Next() {
		var a model.Article
		err := rows.Scan(&a.ID, &a.Date, &a.Title, &a.Press, &a.Author, &a.Content, &a.Keyword, &a.Image, &a.Link)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return articles, nil
}
