package port

import (
	"context"

	"github.com/niksmo/storefront/internal/core/domain"
)

// BlobStore is the persistence mirror for slice state:
// string-keyed JSON blobs, read once at startup and rewritten
// after every mutation. Load reports [domain.ErrNotFound]
// for a missing key.
type BlobStore interface {
	Load(key string, v any) error
	Store(key string, v any) error
	Delete(key string) error
}

// CatalogProvider fetches the remote product catalog.
type CatalogProvider interface {
	FetchProducts(context.Context) ([]domain.Product, error)
	FetchCategories(context.Context) ([]string, error)
}

// ViewEventsProducer emits product view events to the broker.
type ViewEventsProducer interface {
	ProduceView(context.Context, domain.ProductViewEvent) error
}

// OrdersStorage persists order snapshots.
type OrdersStorage interface {
	StoreOrder(context.Context, domain.Order) error
	ReadOrder(ctx context.Context, id string) (domain.Order, error)
}

// ProductGetter resolves a product id against the catalog snapshot.
type ProductGetter interface {
	Product(id int) (domain.Product, error)
}

type CartManager interface {
	Add(productID, qty int) (domain.Cart, error)
	UpdateQuantity(id, qty int) domain.Cart
	Remove(id int) domain.Cart
	Clear() domain.Cart
	Set(lines []domain.CartLine) domain.Cart
	Cart() domain.Cart
	Quote(couponCode string, m domain.ShippingMethod) domain.Quote
}

type WishlistManager interface {
	Toggle(productID int) (domain.Wishlist, error)
	Remove(id int) domain.Wishlist
	Clear() domain.Wishlist
	Wishlist() domain.Wishlist
}

// ProductsBrowser exposes the catalog snapshot through
// the derivation pipeline.
type ProductsBrowser interface {
	ProductGetter
	Browse(domain.FilterState) (domain.BrowseResult, error)
	Categories() []string
	Refresh(context.Context) error
}

// ProductViewer reads a product detail, recording the view.
type ProductViewer interface {
	ViewProduct(ctx context.Context, id int) (domain.Product, error)
	RecentlyViewed() []domain.Product
}

type CheckoutProcessor interface {
	Checkout(ctx context.Context, f domain.CheckoutForm) (domain.Order, error)
	Order(ctx context.Context, id string) (domain.Order, error)
}

// PopupSwitcher mutates the drawer visibility flags.
// The flags are independent, setting one never clears the other.
type PopupSwitcher interface {
	SetCartPopup(visible bool)
	SetWishlistPopup(visible bool)
	Popups() (cart, wishlist bool)
}
