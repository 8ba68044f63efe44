package domain

import (
	"fmt"
	"time"
)

// BuddhistYearOffset converts a Gregorian year to the Thai Buddhist Era year
// used on all formal documents.
const BuddhistYearOffset = 543

// BuddhistYear returns the Buddhist Era year for the given time.
func BuddhistYear(t time.Time) int {
	return t.Year() + BuddhistYearOffset
}

// DocumentNumber is the running number stamped on a formal document,
// scoped to a (prefix, year) series. The zero Number represents a series
// that has not issued anything yet.
type DocumentNumber struct {
	Prefix string `json:"prefix"`
	Year   int    `json:"year"`
	Number int    `json:"number"`
}

// String renders the canonical form, e.g. "ชร. 0001/2568".
func (n DocumentNumber) String() string {
	return fmt.Sprintf("%s. %04d/%d", n.Prefix, n.Number, n.Year)
}

// Formatted returns the canonical string for JSON payloads and storage.
func (n DocumentNumber) Formatted() string {
	return n.String()
}
