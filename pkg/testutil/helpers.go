// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/pension-calculator/internal/session"
)

// FindNotice finds the first notice with the given code.
// Returns a pointer to the notice if found, nil otherwise.
func FindNotice(notices []session.Notice, code string) *session.Notice {
	for i := range notices {
		if notices[i].Code == code {
			return &notices[i]
		}
	}
	return nil
}

// CountLevel returns how many notices carry the given level.
func CountLevel(notices []session.Notice, level string) int {
	count := 0
	for _, n := range notices {
		if n.Level == level {
			count++
		}
	}
	return count
}
