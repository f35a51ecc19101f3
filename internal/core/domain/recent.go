package domain

// RecentlyViewedLimit caps the recently viewed list length.
const RecentlyViewedLimit = 8

// A RecentlyViewed list is most-recent-first and deduped by
// product id: viewing a known product moves it to the front.
type RecentlyViewed struct {
	Products []Product
}

func (r RecentlyViewed) Record(p Product) RecentlyViewed {
	next := make([]Product, 0, len(r.Products)+1)
	next = append(next, p)
	for _, v := range r.Products {
		if v.ID != p.ID {
			next = append(next, v)
		}
	}
	if len(next) > RecentlyViewedLimit {
		next = next[:RecentlyViewedLimit]
	}
	return RecentlyViewed{next}
}
