package models

import (
	"fmt"
	"time"
)

// Stats summarizes a set of submissions for the admin dashboard.
type Stats struct {
	Total     int    `json:"total"`
	Messages  int    `json:"messages"`
	Ratings   int    `json:"ratings"`
	AvgRating string `json:"avgRating"` // one decimal place, "0" when nothing is rated
	Today     int    `json:"today"`
	ThisWeek  int    `json:"thisWeek"`
}

// ComputeStats aggregates comments as the admin dashboard presents them.
// now anchors the "today" and "this week" windows.
func ComputeStats(comments []Comment, now time.Time) Stats {
	s := Stats{Total: len(comments), AvgRating: "0"}

	ratingSum := 0
	nowUTC := now.UTC()
	weekAgo := nowUTC.Add(-7 * 24 * time.Hour)
	for _, c := range comments {
		if c.IsContactMessage() {
			s.Messages++
		}
		if c.HasRating() {
			s.Ratings++
			ratingSum += *c.Rating
		}
		created := c.CreatedAt.UTC()
		if sameDay(created, nowUTC) {
			s.Today++
		}
		if !created.Before(weekAgo) && !created.After(nowUTC) {
			s.ThisWeek++
		}
	}

	if s.Ratings > 0 {
		s.AvgRating = fmt.Sprintf("%.1f", float64(ratingSum)/float64(s.Ratings))
	}
	return s
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
