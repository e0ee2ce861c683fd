package services

import (
	"context"
	"fmt"

	"github.com/sherryhehe/fashion-api/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeProductStore keeps products in a map and derives counts from them, so
// reconciliation tests always see the live state.
type fakeProductStore struct {
	products map[primitive.ObjectID]*models.Product

	findErr      error
	countErr     error
	setRatingErr error
}

func newFakeProductStore(products ...*models.Product) *fakeProductStore {
	m := make(map[primitive.ObjectID]*models.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductStore{products: m}
}

func (f *fakeProductStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	p, ok := f.products[id]
	if !ok {
		return nil, fmt.Errorf("product %s: %w", id.Hex(), ErrNotFound)
	}
	return p, nil
}

func (f *fakeProductStore) CountByDimension(_ context.Context, dim Dimension, name string) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	var n int64
	for _, p := range f.products {
		if p.IsActive && DimensionValue(p, dim) == name {
			n++
		}
	}
	return n, nil
}

func (f *fakeProductStore) SetRating(_ context.Context, id primitive.ObjectID, rating float64, reviewCount int) error {
	if f.setRatingErr != nil {
		return f.setRatingErr
	}
	p, ok := f.products[id]
	if !ok {
		return fmt.Errorf("product %s: %w", id.Hex(), ErrNotFound)
	}
	p.Rating = rating
	p.ReviewCount = reviewCount
	return nil
}

func (f *fakeProductStore) SetReviews(_ context.Context, id primitive.ObjectID, reviews []models.EmbeddedReview) error {
	p, ok := f.products[id]
	if !ok {
		return fmt.Errorf("product %s: %w", id.Hex(), ErrNotFound)
	}
	p.Reviews = reviews
	return nil
}

func (f *fakeProductStore) IncrementSales(_ context.Context, id primitive.ObjectID, by int) error {
	p, ok := f.products[id]
	if !ok {
		return fmt.Errorf("product %s: %w", id.Hex(), ErrNotFound)
	}
	p.SalesCount += by
	return nil
}

// fakeCatalogStore records every count write so tests can assert which
// buckets were reconciled and with what values.
type countWrite struct {
	dim   Dimension
	name  string
	count int64
}

type fakeCatalogStore struct {
	writes []countWrite
	err    error
}

func (f *fakeCatalogStore) SetProductCount(_ context.Context, dim Dimension, name string, count int64) error {
	if f.err != nil {
		return f.err
	}
	f.writes = append(f.writes, countWrite{dim: dim, name: name, count: count})
	return nil
}

// lastCount returns the most recent write for a bucket, or -1.
func (f *fakeCatalogStore) lastCount(dim Dimension, name string) int64 {
	for i := len(f.writes) - 1; i >= 0; i-- {
		if f.writes[i].dim == dim && f.writes[i].name == name {
			return f.writes[i].count
		}
	}
	return -1
}

type fakeReviewStore struct {
	reviews map[primitive.ObjectID]*models.Review

	findErr   error
	insertErr error
}

func newFakeReviewStore(reviews ...*models.Review) *fakeReviewStore {
	m := make(map[primitive.ObjectID]*models.Review, len(reviews))
	for _, r := range reviews {
		m[r.ID] = r
	}
	return &fakeReviewStore{reviews: m}
}

func (f *fakeReviewStore) FindByProduct(_ context.Context, productID primitive.ObjectID) ([]models.Review, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []models.Review
	for _, r := range f.reviews {
		if r.ProductID == productID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReviewStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Review, error) {
	r, ok := f.reviews[id]
	if !ok {
		return nil, fmt.Errorf("review %s: %w", id.Hex(), ErrNotFound)
	}
	copied := *r
	return &copied, nil
}

func (f *fakeReviewStore) Insert(_ context.Context, review *models.Review) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if review.ID.IsZero() {
		review.ID = primitive.NewObjectID()
	}
	copied := *review
	f.reviews[review.ID] = &copied
	return nil
}

func (f *fakeReviewStore) Update(_ context.Context, review *models.Review) error {
	if _, ok := f.reviews[review.ID]; !ok {
		return fmt.Errorf("review %s: %w", review.ID.Hex(), ErrNotFound)
	}
	copied := *review
	f.reviews[review.ID] = &copied
	return nil
}

func (f *fakeReviewStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.reviews[id]; !ok {
		return fmt.Errorf("review %s: %w", id.Hex(), ErrNotFound)
	}
	delete(f.reviews, id)
	return nil
}

type fakeCartStore struct {
	items []models.CartItem

	itemsErr error
	clearErr error
	cleared  []string
}

func (f *fakeCartStore) ItemsByUser(_ context.Context, userID string) ([]models.CartItem, error) {
	if f.itemsErr != nil {
		return nil, f.itemsErr
	}
	var out []models.CartItem
	for _, item := range f.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeCartStore) Upsert(_ context.Context, item *models.CartItem) error {
	for i := range f.items {
		if f.items[i].UserID == item.UserID && f.items[i].ProductID == item.ProductID {
			f.items[i] = *item
			return nil
		}
	}
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeCartStore) Remove(_ context.Context, userID string, productID primitive.ObjectID) error {
	for i, item := range f.items {
		if item.UserID == userID && item.ProductID == productID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("cart item: %w", ErrNotFound)
}

func (f *fakeCartStore) ClearUser(_ context.Context, userID string) error {
	if f.clearErr != nil {
		return f.clearErr
	}
	var kept []models.CartItem
	for _, item := range f.items {
		if item.UserID != userID {
			kept = append(kept, item)
		}
	}
	f.items = kept
	f.cleared = append(f.cleared, userID)
	return nil
}

// fakeOrderStore hands out copies on reads, like a real driver decode, so a
// rejected mutation can never leak into stored state.
type fakeOrderStore struct {
	orders []*models.Order

	insertErr error
	countErr  error
}

func (f *fakeOrderStore) Insert(_ context.Context, order *models.Order) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	copied := copyOrder(order)
	f.orders = append(f.orders, copied)
	return nil
}

func (f *fakeOrderStore) Count(_ context.Context) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return int64(len(f.orders)), nil
}

func (f *fakeOrderStore) FindByID(_ context.Context, id string) (*models.Order, error) {
	for _, o := range f.orders {
		if o.ID.Hex() == id || o.OrderNumber == id {
			return copyOrder(o), nil
		}
	}
	return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
}

func (f *fakeOrderStore) Update(_ context.Context, order *models.Order) error {
	for i, o := range f.orders {
		if o.ID == order.ID {
			f.orders[i] = copyOrder(order)
			return nil
		}
	}
	return fmt.Errorf("order %s: %w", order.ID.Hex(), ErrNotFound)
}

func (f *fakeOrderStore) ListByUser(_ context.Context, userID string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, *copyOrder(o))
		}
	}
	return out, nil
}

func (f *fakeOrderStore) ListAll(_ context.Context) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		out = append(out, *copyOrder(o))
	}
	return out, nil
}

func (f *fakeOrderStore) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, o := range f.orders {
		if o.ID == id {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("order %s: %w", id.Hex(), ErrNotFound)
}

func copyOrder(o *models.Order) *models.Order {
	copied := *o
	copied.Items = append([]models.OrderItem(nil), o.Items...)
	copied.Timeline = append([]models.TimelineEntry(nil), o.Timeline...)
	return &copied
}
