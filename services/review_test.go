package services

import (
	"context"
	"testing"
	"time"

	"github.com/sherryhehe/fashion-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func productWithEmbedded(ratings ...int) *models.Product {
	p := &models.Product{
		ID:       primitive.NewObjectID(),
		Name:     "embroidered kurta",
		Price:    2500,
		IsActive: true,
		Reviews:  []models.EmbeddedReview{},
	}
	for _, r := range ratings {
		p.Reviews = append(p.Reviews, models.EmbeddedReview{
			ID:     primitive.NewObjectID().Hex(),
			Rating: r,
			Name:   "Aisha",
			Date:   time.Now(),
		})
	}
	return p
}

func collectionReview(productID primitive.ObjectID, rating int) *models.Review {
	return &models.Review{
		ID:        primitive.NewObjectID(),
		ProductID: productID,
		Rating:    rating,
		Comment:   "fits perfectly, lovely fabric",
		Name:      "Sana",
		Date:      time.Now(),
	}
}

func TestRecomputeRatingMergesBothSources(t *testing.T) {
	p := productWithEmbedded(4, 5)
	products := newFakeProductStore(p)
	reviews := newFakeReviewStore(collectionReview(p.ID, 3))
	svc := NewReviewService(products, reviews, &fakeOrderStore{})

	rating, count, err := svc.RecomputeRating(context.Background(), p.ID)
	require.NoError(t, err)

	assert.Equal(t, 4.0, rating)
	assert.Equal(t, 3, count)
	assert.Equal(t, 4.0, p.Rating)
	assert.Equal(t, 3, p.ReviewCount)
}

func TestRecomputeRatingRoundsToOneDecimal(t *testing.T) {
	p := productWithEmbedded(3, 4, 4)
	products := newFakeProductStore(p)
	svc := NewReviewService(products, newFakeReviewStore(), &fakeOrderStore{})

	rating, count, err := svc.RecomputeRating(context.Background(), p.ID)
	require.NoError(t, err)

	assert.Equal(t, 3.7, rating) // 11/3 = 3.666…
	assert.Equal(t, 3, count)
}

func TestRecomputeRatingNoReviewsIsZero(t *testing.T) {
	p := productWithEmbedded()
	p.Rating = 4.2 // stale values to overwrite
	p.ReviewCount = 7
	products := newFakeProductStore(p)
	svc := NewReviewService(products, newFakeReviewStore(), &fakeOrderStore{})

	rating, count, err := svc.RecomputeRating(context.Background(), p.ID)
	require.NoError(t, err)

	assert.Zero(t, rating)
	assert.Zero(t, count)
	assert.Zero(t, p.Rating)
	assert.Zero(t, p.ReviewCount)
}

func TestRecomputeRatingUnknownProduct(t *testing.T) {
	svc := NewReviewService(newFakeProductStore(), newFakeReviewStore(), &fakeOrderStore{})

	_, _, err := svc.RecomputeRating(context.Background(), primitive.NewObjectID())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, CodeNotFound, apiErr.Code)
}

func TestAddReviewValidation(t *testing.T) {
	p := productWithEmbedded()
	svc := NewReviewService(newFakeProductStore(p), newFakeReviewStore(), &fakeOrderStore{})

	cases := []struct {
		name  string
		input ReviewInput
	}{
		{"rating too low", ReviewInput{Rating: 0, Comment: "long enough comment", Name: "Sana"}},
		{"rating too high", ReviewInput{Rating: 6, Comment: "long enough comment", Name: "Sana"}},
		{"comment too short", ReviewInput{Rating: 4, Comment: "meh", Name: "Sana"}},
		{"name too short", ReviewInput{Rating: 4, Comment: "long enough comment", Name: "S"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AddReview(context.Background(), p.ID, "user-1", tc.input)
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, CodeValidation, apiErr.Code)
		})
	}
}

func TestAddReviewRecomputesAggregates(t *testing.T) {
	p := productWithEmbedded(5)
	products := newFakeProductStore(p)
	svc := NewReviewService(products, newFakeReviewStore(), &fakeOrderStore{})

	review, err := svc.AddReview(context.Background(), p.ID, "user-1", ReviewInput{
		Rating:  3,
		Comment: "color faded after one wash",
		Name:    "Hira",
	})
	require.NoError(t, err)
	require.False(t, review.ID.IsZero())

	assert.Equal(t, 4.0, p.Rating)
	assert.Equal(t, 2, p.ReviewCount)
}

// deliveredOrderFor builds a delivered order for the user containing the
// product, the condition that marks a new review as a verified purchase.
func deliveredOrderFor(userID string, productID primitive.ObjectID) *models.Order {
	return &models.Order{
		ID:          primitive.NewObjectID(),
		OrderNumber: "ORD-1756500000000-0001-cafe0001",
		UserID:      userID,
		Items: []models.OrderItem{{
			ProductID: productID,
			Quantity:  1,
			Price:     2500,
			LineTotal: 2500,
		}},
		Status: models.OrderStatusDelivered,
	}
}

func TestAddReviewMarksVerifiedPurchase(t *testing.T) {
	p := productWithEmbedded()
	products := newFakeProductStore(p)
	orders := &fakeOrderStore{orders: []*models.Order{deliveredOrderFor("user-1", p.ID)}}
	svc := NewReviewService(products, newFakeReviewStore(), orders)

	review, err := svc.AddReview(context.Background(), p.ID, "user-1", ReviewInput{
		Rating:  5,
		Comment: "exactly as pictured, lovely stitching",
		Name:    "Hira",
	})
	require.NoError(t, err)

	assert.True(t, review.Verified)
}

func TestAddReviewUnverifiedWithoutDelivery(t *testing.T) {
	p := productWithEmbedded()
	other := productWithEmbedded()
	products := newFakeProductStore(p, other)

	pending := deliveredOrderFor("user-1", p.ID)
	pending.Status = models.OrderStatusPending
	orders := &fakeOrderStore{orders: []*models.Order{
		pending,                               // right product, not delivered yet
		deliveredOrderFor("user-1", other.ID), // delivered, different product
		deliveredOrderFor("user-2", p.ID),     // delivered, different user
	}}
	svc := NewReviewService(products, newFakeReviewStore(), orders)

	review, err := svc.AddReview(context.Background(), p.ID, "user-1", ReviewInput{
		Rating:  4,
		Comment: "ordered a second one before the first arrived",
		Name:    "Hira",
	})
	require.NoError(t, err)

	assert.False(t, review.Verified)
}

func TestAddEmbeddedReviewRecomputesAggregates(t *testing.T) {
	p := productWithEmbedded(4)
	products := newFakeProductStore(p)
	svc := NewReviewService(products, newFakeReviewStore(), &fakeOrderStore{})

	_, err := svc.AddEmbeddedReview(context.Background(), p.ID, ReviewInput{
		Rating:  2,
		Comment: "stitching came loose quickly",
		Name:    "Zara",
	}, true)
	require.NoError(t, err)

	assert.Len(t, p.Reviews, 2)
	assert.True(t, p.Reviews[1].Verified)
	assert.Equal(t, 3.0, p.Rating)
	assert.Equal(t, 2, p.ReviewCount)
}

func TestUpdateReviewRecomputesAggregates(t *testing.T) {
	p := productWithEmbedded()
	review := collectionReview(p.ID, 5)
	products := newFakeProductStore(p)
	reviews := newFakeReviewStore(review)
	svc := NewReviewService(products, reviews, &fakeOrderStore{})

	updated, err := svc.UpdateReview(context.Background(), p.ID, review.ID.Hex(), ReviewInput{
		Rating:  1,
		Comment: "changed my mind about this one",
		Name:    "Sana",
	})
	require.NoError(t, err)

	assert.Equal(t, "collection", updated.Source)
	assert.Equal(t, 1.0, p.Rating)
	assert.Equal(t, 1, p.ReviewCount)
}

func TestUpdateEmbeddedReviewRecomputesAggregates(t *testing.T) {
	p := productWithEmbedded(5, 3)
	target := p.Reviews[0].ID
	products := newFakeProductStore(p)
	svc := NewReviewService(products, newFakeReviewStore(), &fakeOrderStore{})

	updated, err := svc.UpdateReview(context.Background(), p.ID, target, ReviewInput{
		Rating:  1,
		Comment: "seams split on the second wear",
		Name:    "Aisha",
	})
	require.NoError(t, err)

	assert.Equal(t, "embedded", updated.Source)
	assert.Equal(t, 1, p.Reviews[0].Rating)
	assert.Equal(t, 2.0, p.Rating)
	assert.Equal(t, 2, p.ReviewCount)
}

func TestUpdateReviewNumericIDUsesPosition(t *testing.T) {
	p := productWithEmbedded(4, 2)
	products := newFakeProductStore(p)
	svc := NewReviewService(products, newFakeReviewStore(), &fakeOrderStore{})

	// "1" matches no review id, so it addresses the second embedded entry.
	updated, err := svc.UpdateReview(context.Background(), p.ID, "1", ReviewInput{
		Rating:  5,
		Comment: "grew on me after a few wears",
		Name:    "Aisha",
	})
	require.NoError(t, err)

	assert.Equal(t, "embedded", updated.Source)
	assert.Equal(t, 5, p.Reviews[1].Rating)
	assert.Equal(t, 4.5, p.Rating)
}

func TestUpdateReviewNotFoundAnywhere(t *testing.T) {
	p := productWithEmbedded(4)
	products := newFakeProductStore(p)
	svc := NewReviewService(products, newFakeReviewStore(), &fakeOrderStore{})

	_, err := svc.UpdateReview(context.Background(), p.ID, primitive.NewObjectID().Hex(), ReviewInput{
		Rating:  5,
		Comment: "this review does not exist anywhere",
		Name:    "Aisha",
	})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, CodeNotFound, apiErr.Code)
	assert.Equal(t, 4, p.Reviews[0].Rating)
}

func TestDeleteReviewFindsCollectionFirst(t *testing.T) {
	p := productWithEmbedded(4)
	review := collectionReview(p.ID, 2)
	products := newFakeProductStore(p)
	reviews := newFakeReviewStore(review)
	svc := NewReviewService(products, reviews, &fakeOrderStore{})

	require.NoError(t, svc.DeleteReview(context.Background(), p.ID, review.ID.Hex()))

	// Gone from the collection, embedded untouched.
	assert.Empty(t, reviews.reviews)
	assert.Len(t, p.Reviews, 1)
	assert.Equal(t, 4.0, p.Rating)
	assert.Equal(t, 1, p.ReviewCount)
}

func TestDeleteReviewFallsBackToEmbeddedByID(t *testing.T) {
	p := productWithEmbedded(4, 5)
	target := p.Reviews[0].ID
	products := newFakeProductStore(p)
	svc := NewReviewService(products, newFakeReviewStore(), &fakeOrderStore{})

	require.NoError(t, svc.DeleteReview(context.Background(), p.ID, target))

	assert.Len(t, p.Reviews, 1)
	assert.Equal(t, 5.0, p.Rating)
	assert.Equal(t, 1, p.ReviewCount)
}

func TestDeleteReviewNumericIDUsesPosition(t *testing.T) {
	p := productWithEmbedded(4, 5, 3)
	products := newFakeProductStore(p)
	svc := NewReviewService(products, newFakeReviewStore(), &fakeOrderStore{})

	// "1" matches no review id, so it addresses the second embedded entry.
	require.NoError(t, svc.DeleteReview(context.Background(), p.ID, "1"))

	require.Len(t, p.Reviews, 2)
	assert.Equal(t, 4, p.Reviews[0].Rating)
	assert.Equal(t, 3, p.Reviews[1].Rating)
	assert.Equal(t, 3.5, p.Rating)
	assert.Equal(t, 2, p.ReviewCount)
}

func TestDeleteLastReviewResetsAggregates(t *testing.T) {
	p := productWithEmbedded(5)
	target := p.Reviews[0].ID
	products := newFakeProductStore(p)
	svc := NewReviewService(products, newFakeReviewStore(), &fakeOrderStore{})

	require.NoError(t, svc.DeleteReview(context.Background(), p.ID, target))

	assert.Empty(t, p.Reviews)
	assert.Zero(t, p.Rating)
	assert.Zero(t, p.ReviewCount)
}

func TestDeleteReviewNotFoundAnywhere(t *testing.T) {
	p := productWithEmbedded(4)
	products := newFakeProductStore(p)
	svc := NewReviewService(products, newFakeReviewStore(), &fakeOrderStore{})

	err := svc.DeleteReview(context.Background(), p.ID, primitive.NewObjectID().Hex())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, CodeNotFound, apiErr.Code)
	assert.Len(t, p.Reviews, 1)
}

func TestProductReviewsMergesSources(t *testing.T) {
	p := productWithEmbedded(4, 5)
	products := newFakeProductStore(p)
	reviews := newFakeReviewStore(collectionReview(p.ID, 3))
	svc := NewReviewService(products, reviews, &fakeOrderStore{})

	views, err := svc.ProductReviews(context.Background(), p.ID)
	require.NoError(t, err)

	require.Len(t, views, 3)
	sources := map[string]int{}
	for _, v := range views {
		sources[v.Source]++
	}
	assert.Equal(t, 2, sources["embedded"])
	assert.Equal(t, 1, sources["collection"])
}
