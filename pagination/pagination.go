// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package pagination computes page windows and total-page counts for the
// vote log and survey history listings.
package pagination

import "strconv"

// DefaultPageSize is the fixed page size for the vote log and the survey
// history window.
const DefaultPageSize = 100

// ParsePage interprets a raw ?page= query value. Absent, unparseable, or
// non-positive values all fall back to page 1.
func ParsePage(raw string) int {
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Window returns the inclusive zero-based row range [from, to] covered by
// the given page.
func Window(page, pageSize int) (from, to int) {
	from = (page - 1) * pageSize
	to = from + pageSize - 1
	return from, to
}

// TotalPages returns ceil(count / pageSize). Zero rows means zero pages.
func TotalPages(count, pageSize int) int {
	return (count + pageSize - 1) / pageSize
}
