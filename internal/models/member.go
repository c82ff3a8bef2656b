package models

import (
	"strings"
	"time"
)

type Category string

const (
	Parents       Category = "Parents"
	GenMillennial Category = "GenMillennial"
	GenAlpha      Category = "GenAlpha"
)

// CategoryOrder is the fixed group order used by every report.
var CategoryOrder = []Category{Parents, GenMillennial, GenAlpha}

var defaultAmounts = map[Category]int64{
	Parents:       500,
	GenMillennial: 300,
	GenAlpha:      50,
}

// ParseCategory matches the category token case-insensitively.
// "GenZ" is accepted as an alias for GenMillennial.
func ParseCategory(s string) (Category, bool) {
	switch strings.ToLower(s) {
	case "parents":
		return Parents, true
	case "genmillennial", "genz":
		return GenMillennial, true
	case "genalpha":
		return GenAlpha, true
	}
	return "", false
}

// DefaultAmount is the contribution amount in whole KES owed by a member
// of this category when no explicit amount is given.
func (c Category) DefaultAmount() int64 {
	return defaultAmounts[c]
}

type Member struct {
	ID            int64     `db:"id"`
	Name          string    `db:"name"`
	Category      Category  `db:"category"`
	DefaultAmount int64     `db:"default_amount"`
	CreatedAt     time.Time `db:"created_at"`
}
