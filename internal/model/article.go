package model

import (
	"strings"
	"time"
)

// Article is a crawled news row. Ingestion happens outside this service;
// articles are read-only here.
type Article struct {
	ID      int64
	Date    time.Time
	Title   string
	Press   string
	Author  string
	Content string
	Keyword string
	Image   string
	Link    string
}

// Keywords splits the comma-separated keyword column, dropping blanks.
func (a Article) Keywords() []string {
	var out []string
	for _, k := range strings.Split(a.Keyword, ",") {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
