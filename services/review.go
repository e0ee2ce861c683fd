package services

import (
	"context"
	"errors"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/sherryhehe/fashion-api/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReviewService maintains a product's derived rating and reviewCount over its
// two review sources: the array embedded on the product document and the
// standalone review collection.
type ReviewService struct {
	products ProductStore
	reviews  ReviewStore
	orders   OrderStore
}

func NewReviewService(products ProductStore, reviews ReviewStore, orders OrderStore) *ReviewService {
	return &ReviewService{products: products, reviews: reviews, orders: orders}
}

type ReviewInput struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment" binding:"required"`
	Name    string `json:"name" binding:"required"`
}

func (in ReviewInput) validate() error {
	if in.Rating < 1 || in.Rating > 5 {
		return Invalid("rating must be between 1 and 5")
	}
	if l := len(strings.TrimSpace(in.Comment)); l < 10 || l > 500 {
		return Invalid("comment must be between 10 and 500 characters")
	}
	if l := len(strings.TrimSpace(in.Name)); l < 2 || l > 50 {
		return Invalid("name must be between 2 and 50 characters")
	}
	return nil
}

// ReviewView is the merged read model handed to clients: reviews from both
// sources in one list.
type ReviewView struct {
	ID       string    `json:"id"`
	Rating   int       `json:"rating"`
	Comment  string    `json:"comment"`
	Name     string    `json:"name"`
	Date     time.Time `json:"date"`
	Verified bool      `json:"verified"`
	Source   string    `json:"source"` // "embedded" or "collection"
}

// ProductReviews returns the union of both review sources for a product.
func (s *ReviewService) ProductReviews(ctx context.Context, productID primitive.ObjectID) ([]ReviewView, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, NotFound("product not found")
		}
		return nil, err
	}

	views := make([]ReviewView, 0, len(product.Reviews))
	for _, r := range product.Reviews {
		views = append(views, ReviewView{
			ID: r.ID, Rating: r.Rating, Comment: r.Comment,
			Name: r.Name, Date: r.Date, Verified: r.Verified,
			Source: "embedded",
		})
	}

	collected, err := s.reviews.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	for _, r := range collected {
		views = append(views, ReviewView{
			ID: r.ID.Hex(), Rating: r.Rating, Comment: r.Comment,
			Name: r.Name, Date: r.Date, Verified: r.Verified,
			Source: "collection",
		})
	}
	return views, nil
}

// RecomputeRating re-derives rating and reviewCount from the full review
// union and persists both onto the product. The mean is rounded to one
// decimal place; a product with no reviews left is reset to exactly 0/0.
func (s *ReviewService) RecomputeRating(ctx context.Context, productID primitive.ObjectID) (float64, int, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return 0, 0, NotFound("product not found")
		}
		return 0, 0, err
	}

	sum := 0
	count := 0
	for _, r := range product.Reviews {
		sum += r.Rating
		count++
	}

	collected, err := s.reviews.FindByProduct(ctx, productID)
	if err != nil {
		return 0, 0, err
	}
	for _, r := range collected {
		sum += r.Rating
		count++
	}

	rating := 0.0
	if count > 0 {
		rating = math.Round(float64(sum)/float64(count)*10) / 10
	}

	if err := s.products.SetRating(ctx, productID, rating, count); err != nil {
		return 0, 0, err
	}
	return rating, count, nil
}

// AddReview stores a new review in the review collection and recomputes the
// product aggregates from the post-mutation state. The review is marked
// verified when the reviewer has a delivered order containing the product.
func (s *ReviewService) AddReview(ctx context.Context, productID primitive.ObjectID, userID string, in ReviewInput) (*models.Review, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, NotFound("product not found")
		}
		return nil, err
	}

	review := &models.Review{
		ProductID: productID,
		Rating:    in.Rating,
		Comment:   strings.TrimSpace(in.Comment),
		Name:      strings.TrimSpace(in.Name),
		Date:      time.Now(),
		Verified:  s.verifiedPurchase(ctx, userID, productID),
	}
	if err := s.reviews.Insert(ctx, review); err != nil {
		return nil, err
	}
	s.recomputeLogged(ctx, productID)
	return review, nil
}

// AddEmbeddedReview appends a review directly onto the product document.
// This is the legacy write path, kept for admin imports.
func (s *ReviewService) AddEmbeddedReview(ctx context.Context, productID primitive.ObjectID, in ReviewInput, verified bool) (*models.EmbeddedReview, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, NotFound("product not found")
		}
		return nil, err
	}

	review := models.EmbeddedReview{
		ID:       primitive.NewObjectID().Hex(),
		Rating:   in.Rating,
		Comment:  strings.TrimSpace(in.Comment),
		Name:     strings.TrimSpace(in.Name),
		Date:     time.Now(),
		Verified: verified,
	}
	if err := s.products.SetReviews(ctx, productID, append(product.Reviews, review)); err != nil {
		return nil, err
	}
	s.recomputeLogged(ctx, productID)
	return &review, nil
}

// verifiedPurchase reports whether the user has a delivered order containing
// the product. A failed lookup downgrades the review to unverified instead of
// blocking it.
func (s *ReviewService) verifiedPurchase(ctx context.Context, userID string, productID primitive.ObjectID) bool {
	if userID == "" {
		return false
	}
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		log.Printf("⚠️ reviews: purchase lookup for user %s failed: %v", userID, err)
		return false
	}
	for _, order := range orders {
		if order.Status != models.OrderStatusDelivered {
			continue
		}
		for _, item := range order.Items {
			if item.ProductID == productID {
				return true
			}
		}
	}
	return false
}

// UpdateReview changes a review's rating and content wherever it lives,
// probing the same locations DeleteReview does, then recomputes aggregates.
func (s *ReviewService) UpdateReview(ctx context.Context, productID primitive.ObjectID, reviewID string, in ReviewInput) (*ReviewView, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	if oid, err := primitive.ObjectIDFromHex(reviewID); err == nil {
		review, err := s.reviews.FindByID(ctx, oid)
		if err == nil {
			review.Rating = in.Rating
			review.Comment = strings.TrimSpace(in.Comment)
			review.Name = strings.TrimSpace(in.Name)
			if err := s.reviews.Update(ctx, review); err != nil {
				return nil, err
			}
			s.recomputeLogged(ctx, review.ProductID)
			return &ReviewView{
				ID: review.ID.Hex(), Rating: review.Rating, Comment: review.Comment,
				Name: review.Name, Date: review.Date, Verified: review.Verified,
				Source: "collection",
			}, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, NotFound("product not found")
		}
		return nil, err
	}

	idx := embeddedIndex(product.Reviews, reviewID)
	if idx == -1 {
		return nil, NotFound("review not found")
	}

	r := &product.Reviews[idx]
	r.Rating = in.Rating
	r.Comment = strings.TrimSpace(in.Comment)
	r.Name = strings.TrimSpace(in.Name)
	if err := s.products.SetReviews(ctx, productID, product.Reviews); err != nil {
		return nil, err
	}
	s.recomputeLogged(ctx, productID)
	return &ReviewView{
		ID: r.ID, Rating: r.Rating, Comment: r.Comment,
		Name: r.Name, Date: r.Date, Verified: r.Verified,
		Source: "embedded",
	}, nil
}

// DeleteReview removes one review wherever it lives. The review collection is
// probed first by id; failing that the embedded array is searched by id and,
// for purely numeric identifiers, by positional index. The review is removed
// from exactly the location it was found in before aggregates are recomputed.
func (s *ReviewService) DeleteReview(ctx context.Context, productID primitive.ObjectID, reviewID string) error {
	if oid, err := primitive.ObjectIDFromHex(reviewID); err == nil {
		review, err := s.reviews.FindByID(ctx, oid)
		if err == nil {
			if err := s.reviews.Delete(ctx, oid); err != nil {
				return err
			}
			s.recomputeLogged(ctx, review.ProductID)
			return nil
		}
		if !errors.Is(err, ErrNotFound) {
			return err
		}
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return NotFound("product not found")
		}
		return err
	}

	idx := embeddedIndex(product.Reviews, reviewID)
	if idx == -1 {
		return NotFound("review not found")
	}

	remaining := make([]models.EmbeddedReview, 0, len(product.Reviews)-1)
	remaining = append(remaining, product.Reviews[:idx]...)
	remaining = append(remaining, product.Reviews[idx+1:]...)
	if err := s.products.SetReviews(ctx, productID, remaining); err != nil {
		return err
	}
	s.recomputeLogged(ctx, productID)
	return nil
}

// embeddedIndex locates a review inside the embedded array by id or, for
// purely numeric identifiers, by position. Returns -1 when absent.
func embeddedIndex(reviews []models.EmbeddedReview, reviewID string) int {
	for i, r := range reviews {
		if r.ID == reviewID {
			return i
		}
	}
	// Legacy documents were addressed by position.
	if n, err := strconv.Atoi(reviewID); err == nil && n >= 0 && n < len(reviews) {
		return n
	}
	return -1
}

// Derived display data: a failed recompute is logged and swallowed, it is
// recoverable by the next recomputation.
func (s *ReviewService) recomputeLogged(ctx context.Context, productID primitive.ObjectID) {
	if _, _, err := s.RecomputeRating(ctx, productID); err != nil {
		log.Printf("⚠️ reviews: recompute rating for product %s failed: %v", productID.Hex(), err)
	}
}
