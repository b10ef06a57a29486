package schedule

import "strconv"

// Filters holds the per-field constraints of the schedule viewer. An empty
// field means no constraint; non-empty fields must match exactly.
type Filters struct {
	Group      string `form:"group" json:"group"`
	Subject    string `form:"subject" json:"subject"`
	Room       string `form:"room" json:"room"`
	Instructor string `form:"instructor" json:"instructor"`
}

func (f Filters) Match(r Record) bool {
	return (f.Group == "" || r.Group == f.Group) &&
		(f.Subject == "" || r.Subject == f.Subject) &&
		(f.Room == "" || r.Room == f.Room) &&
		(f.Instructor == "" || r.Instructor == f.Instructor)
}

func Apply(records []Record, f Filters) []Record {
	filtered := make([]Record, 0, len(records))
	for _, r := range records {
		if f.Match(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Options are the distinct dropdown values per filter field, in the order
// first encountered. They always derive from the full record set, never the
// filtered subset, so narrowing one filter never hides options in another.
type Options struct {
	Groups      []string `json:"groups"`
	Subjects    []string `json:"subjects"`
	Rooms       []string `json:"rooms"`
	Instructors []string `json:"instructors"`
}

func CollectOptions(records []Record) Options {
	var opts Options
	opts.Groups = distinct(records, func(r Record) string { return r.Group })
	opts.Subjects = distinct(records, func(r Record) string { return r.Subject })
	opts.Rooms = distinct(records, func(r Record) string { return r.Room })
	opts.Instructors = distinct(records, func(r Record) string { return r.Instructor })
	return opts
}

func distinct(records []Record, field func(Record) string) []string {
	seen := make(map[string]bool, len(records))
	values := make([]string, 0, len(records))
	for _, r := range records {
		v := field(r)
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	return values
}

// PageSizes are the selectable page sizes of the schedule table.
var PageSizes = []int{10, 20, 50, 100}

const DefaultPageSize = 20

// Ellipsis marks a gap in a windowed page-number strip.
const Ellipsis = "..."

type Pager struct {
	Page     int
	PageSize int
}

func NewPager() Pager {
	return Pager{Page: 1, PageSize: DefaultPageSize}
}

// SetPageSize switches the page size and resets to the first page. Sizes
// outside PageSizes are ignored.
func (p *Pager) SetPageSize(size int) {
	for _, s := range PageSizes {
		if s == size {
			p.PageSize = size
			p.Page = 1
			return
		}
	}
}

func (p *Pager) SetPage(page, totalPages int) {
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	p.Page = page
}

// TotalPages is ceil(count/pageSize), never less than 1.
func TotalPages(count, pageSize int) int {
	pages := (count + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// Slice returns the window of records visible on the current page.
func (p Pager) Slice(records []Record) []Record {
	start := (p.Page - 1) * p.PageSize
	if start >= len(records) {
		return nil
	}
	end := start + p.PageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

// PageNumbers renders the page-number strip. Seven or fewer pages show in
// full; beyond that a five-page window slides around the current page with
// first/last pages and ellipsis markers filling the gaps.
func PageNumbers(currentPage, totalPages int) []string {
	var pages []string
	push := func(n int) { pages = append(pages, strconv.Itoa(n)) }

	if totalPages <= 7 {
		for i := 1; i <= totalPages; i++ {
			push(i)
		}
		return pages
	}

	switch {
	case currentPage <= 4:
		for i := 1; i <= 5; i++ {
			push(i)
		}
		pages = append(pages, Ellipsis)
		push(totalPages)
	case currentPage >= totalPages-3:
		push(1)
		pages = append(pages, Ellipsis)
		for i := totalPages - 4; i <= totalPages; i++ {
			push(i)
		}
	default:
		push(1)
		pages = append(pages, Ellipsis)
		for i := currentPage - 1; i <= currentPage+1; i++ {
			push(i)
		}
		pages = append(pages, Ellipsis)
		push(totalPages)
	}
	return pages
}
