package schedule

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []Record {
	return []Record{
		{ID: 1, Subject: "CSE 101", Group: "A", Room: "101", Instructor: "Alice Smith"},
		{ID: 2, Subject: "CSE 101", Group: "B", Room: "102", Instructor: "Bob Jones"},
		{ID: 3, Subject: "MAT 201", Group: "A", Room: "101", Instructor: "Alice Smith"},
		{ID: 4, Subject: "PHY 150", Group: "C", Room: "Lab 1", Instructor: "Carol White"},
	}
}

func TestApplyNoFilters(t *testing.T) {
	records := sampleRecords()
	assert.Equal(t, records, Apply(records, Filters{}))
}

func TestApplyExactMatch(t *testing.T) {
	records := sampleRecords()

	tests := []struct {
		name    string
		filters Filters
		wantIDs []int
	}{
		{name: "By subject", filters: Filters{Subject: "CSE 101"}, wantIDs: []int{1, 2}},
		{name: "By group", filters: Filters{Group: "A"}, wantIDs: []int{1, 3}},
		{name: "By room", filters: Filters{Room: "Lab 1"}, wantIDs: []int{4}},
		{name: "Combined", filters: Filters{Subject: "CSE 101", Group: "A"}, wantIDs: []int{1}},
		{name: "Partial value does not match", filters: Filters{Subject: "CSE"}, wantIDs: []int{}},
		{name: "No matches", filters: Filters{Instructor: "Nobody"}, wantIDs: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(records, tt.filters)
			ids := make([]int, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestCollectOptions(t *testing.T) {
	opts := CollectOptions(sampleRecords())

	// Deduplicated, in first-encountered order.
	assert.Equal(t, []string{"CSE 101", "MAT 201", "PHY 150"}, opts.Subjects)
	assert.Equal(t, []string{"A", "B", "C"}, opts.Groups)
	assert.Equal(t, []string{"101", "102", "Lab 1"}, opts.Rooms)
	assert.Equal(t, []string{"Alice Smith", "Bob Jones", "Carol White"}, opts.Instructors)
}

func TestPagerDefaults(t *testing.T) {
	p := NewPager()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.PageSize)
}

func TestSetPageSize(t *testing.T) {
	p := NewPager()
	p.Page = 3

	p.SetPageSize(50)
	assert.Equal(t, 50, p.PageSize)
	assert.Equal(t, 1, p.Page, "changing page size resets to the first page")

	p.Page = 2
	p.SetPageSize(33)
	assert.Equal(t, 50, p.PageSize, "unknown sizes are ignored")
	assert.Equal(t, 2, p.Page)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 3, TotalPages(45, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 1, TotalPages(0, 20))
}

func TestSlice(t *testing.T) {
	records := make([]Record, 45)
	for i := range records {
		records[i] = Record{ID: i + 1}
	}

	p := NewPager()
	p.SetPage(3, TotalPages(len(records), p.PageSize))

	page := p.Slice(records)
	require.Len(t, page, 5)
	assert.Equal(t, 41, page[0].ID)
	assert.Equal(t, 45, page[4].ID)

	p.SetPage(99, TotalPages(len(records), p.PageSize))
	assert.Equal(t, 3, p.Page, "pages past the end clamp to the last page")
}

func TestPageNumbers(t *testing.T) {
	tests := []struct {
		current  int
		total    int
		expected []string
	}{
		{current: 1, total: 1, expected: []string{"1"}},
		{current: 4, total: 7, expected: []string{"1", "2", "3", "4", "5", "6", "7"}},
		{current: 1, total: 10, expected: []string{"1", "2", "3", "4", "5", "...", "10"}},
		{current: 4, total: 10, expected: []string{"1", "2", "3", "4", "5", "...", "10"}},
		{current: 5, total: 10, expected: []string{"1", "...", "4", "5", "6", "...", "10"}},
		{current: 6, total: 10, expected: []string{"1", "...", "5", "6", "7", "...", "10"}},
		{current: 7, total: 10, expected: []string{"1", "...", "6", "7", "8", "9", "10"}},
		{current: 8, total: 10, expected: []string{"1", "...", "6", "7", "8", "9", "10"}},
		{current: 10, total: 10, expected: []string{"1", "...", "6", "7", "8", "9", "10"}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("page %d of %d", tt.current, tt.total), func(t *testing.T) {
			assert.Equal(t, tt.expected, PageNumbers(tt.current, tt.total))
		})
	}
}
