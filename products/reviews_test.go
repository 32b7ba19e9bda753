package products

import (
	"context"
	"math"
	"sync"
	"testing"

	"vypar/models"
)

// memReviewStore mimics the store's per-document atomicity: fetch returns a
// snapshot, compare-and-append succeeds only against an unchanged count.
type memReviewStore struct {
	mu      sync.Mutex
	product models.Product
}

func (s *memReviewStore) Fetch(_ context.Context, productID string) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.product.ProductID != productID {
		return nil, ErrProductNotFound
	}
	snapshot := s.product
	snapshot.Reviews = append([]models.Review(nil), s.product.Reviews...)
	return &snapshot, nil
}

func (s *memReviewStore) CompareAndAppend(_ context.Context, productID string, expectedReviews int, review models.Review, rating float64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.product.ProductID != productID {
		return false, ErrProductNotFound
	}
	if s.product.NumReviews != expectedReviews {
		return false, nil
	}
	s.product.Reviews = append(s.product.Reviews, review)
	s.product.NumReviews++
	s.product.Rating = rating
	return true, nil
}

func TestAppendReviewSequential(t *testing.T) {
	store := &memReviewStore{product: models.Product{ProductID: "p1"}}

	ratings := []float64{5, 3, 4}
	for i, r := range ratings {
		product, err := appendReview(context.Background(), store, "p1", models.Review{Name: "u", Rating: r})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
		if product.NumReviews != i+1 {
			t.Fatalf("numReviews = %d, want %d", product.NumReviews, i+1)
		}
	}
	if got, want := store.product.Rating, 4.0; got != want {
		t.Fatalf("rating = %v, want %v", got, want)
	}
}

func TestAppendReviewUnknownProduct(t *testing.T) {
	store := &memReviewStore{product: models.Product{ProductID: "p1"}}
	_, err := appendReview(context.Background(), store, "nope", models.Review{Rating: 4})
	if err != ErrProductNotFound {
		t.Fatalf("err = %v, want ErrProductNotFound", err)
	}
}

// Concurrent submissions must not lose updates: the count ends exact and the
// rating is the exact mean of everything submitted.
func TestAppendReviewConcurrent(t *testing.T) {
	store := &memReviewStore{product: models.Product{ProductID: "p1"}}

	const n = 50
	var wg sync.WaitGroup
	var sum float64
	for i := 0; i < n; i++ {
		rating := float64(i%5 + 1)
		sum += rating
		wg.Add(1)
		go func(r float64) {
			defer wg.Done()
			for {
				_, err := appendReview(context.Background(), store, "p1", models.Review{Rating: r})
				if err == nil {
					return
				}
				if err != errReviewConflict {
					t.Errorf("unexpected error: %v", err)
					return
				}
			}
		}(rating)
	}
	wg.Wait()

	if store.product.NumReviews != n {
		t.Fatalf("numReviews = %d, want %d (lost updates)", store.product.NumReviews, n)
	}
	if len(store.product.Reviews) != n {
		t.Fatalf("reviews len = %d, want %d", len(store.product.Reviews), n)
	}
	want := sum / n
	if math.Abs(store.product.Rating-want) > 1e-9 {
		t.Fatalf("rating = %v, want %v", store.product.Rating, want)
	}
}

func TestMeanRating(t *testing.T) {
	existing := []models.Review{{Rating: 2}, {Rating: 4}}
	if got := meanRating(existing, models.Review{Rating: 3}); got != 3 {
		t.Fatalf("meanRating = %v", got)
	}
	if got := meanRating(nil, models.Review{Rating: 5}); got != 5 {
		t.Fatalf("first review mean = %v", got)
	}
}
