package domain

type SortOrder string

const (
	SortDefault   SortOrder = "default"
	SortPriceAsc  SortOrder = "price-asc"
	SortPriceDesc SortOrder = "price-desc"
	SortRating    SortOrder = "rating"
)

const (
	PriceFloor = 0
	PriceCeil  = 1000

	DefaultPerPage = 12
)

// PerPageChoices is the closed set of page sizes.
var PerPageChoices = []int{8, 12, 16, 24}

// A FilterState holds the browse criteria and the pagination cursor.
//
// Every criterion transition resets Page to one, so a page number
// never survives a change of what is being paginated. Transitions
// return the next snapshot.
type FilterState struct {
	Query      string
	Category   string
	PriceMin   float64
	PriceMax   float64
	Brands     []string
	InStock    bool
	OutOfStock bool
	MinRating  int
	SortBy     SortOrder
	Page       int
	PerPage    int
	ShowAll    bool
}

// NewFilterState returns the neutral criteria: no filtering,
// full price range, default sort, first page.
func NewFilterState() FilterState {
	return FilterState{
		PriceMin: PriceFloor,
		PriceMax: PriceCeil,
		SortBy:   SortDefault,
		Page:     1,
		PerPage:  DefaultPerPage,
	}
}

func (f FilterState) WithQuery(q string) FilterState {
	f.Query = q
	f.Page = 1
	return f
}

func (f FilterState) WithCategory(c string) FilterState {
	f.Category = c
	f.Page = 1
	return f
}

// WithPriceRange clamps both bounds to [PriceFloor, PriceCeil] and
// swaps them when min exceeds max.
func (f FilterState) WithPriceRange(min, max float64) FilterState {
	min = clampPrice(min)
	max = clampPrice(max)
	if min > max {
		min, max = max, min
	}
	f.PriceMin, f.PriceMax = min, max
	f.Page = 1
	return f
}

func (f FilterState) WithBrands(brands []string) FilterState {
	f.Brands = brands
	f.Page = 1
	return f
}

func (f FilterState) WithStockStatus(inStock, outOfStock bool) FilterState {
	f.InStock, f.OutOfStock = inStock, outOfStock
	f.Page = 1
	return f
}

// WithMinRating keeps the threshold within 0..5.
func (f FilterState) WithMinRating(r int) FilterState {
	if r < 0 {
		r = 0
	}
	if r > 5 {
		r = 5
	}
	f.MinRating = r
	f.Page = 1
	return f
}

func (f FilterState) WithSort(s SortOrder) FilterState {
	switch s {
	case SortPriceAsc, SortPriceDesc, SortRating:
		f.SortBy = s
	default:
		f.SortBy = SortDefault
	}
	f.Page = 1
	return f
}

// WithPage moves the pagination cursor without touching criteria.
func (f FilterState) WithPage(page int) FilterState {
	if page < 1 {
		page = 1
	}
	f.Page = page
	return f
}

// WithPerPage accepts only the closed page size set,
// anything else falls back to the default size.
func (f FilterState) WithPerPage(n int) FilterState {
	f.PerPage = DefaultPerPage
	for _, c := range PerPageChoices {
		if n == c {
			f.PerPage = n
			break
		}
	}
	f.Page = 1
	return f
}

func (f FilterState) WithShowAll(v bool) FilterState {
	f.ShowAll = v
	f.Page = 1
	return f
}

func clampPrice(v float64) float64 {
	if v < PriceFloor {
		return PriceFloor
	}
	if v > PriceCeil {
		return PriceCeil
	}
	return v
}
