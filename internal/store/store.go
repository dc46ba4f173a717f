package store

import (
	"context"
	"errors"

	"github.com/reviewlens/reviewlens/pkg/models"
)

var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidLabel = errors.New("unknown sentiment label")
)

// Pagination bounds for ListReviews.
const (
	DefaultPageLimit = 50
	MaxPageLimit     = 200
)

// Store is the data access interface. All database operations go through here.
type Store interface {
	Ping(ctx context.Context) error

	// CreateReview inserts a review with its sentiment score in a single
	// statement; content and score are never visible separately.
	CreateReview(ctx context.Context, content string, sentimentScore float64) (*models.Review, error)

	// ListAllReviews returns every review ordered by creation time ascending.
	ListAllReviews(ctx context.Context) ([]models.Review, error)

	// ListReviews returns one page of reviews matching the filter, plus the
	// total match count.
	ListReviews(ctx context.Context, filter ReviewFilter) ([]models.Review, int, error)

	// GetReview returns one review by ID, or ErrNotFound.
	GetReview(ctx context.Context, id int64) (*models.Review, error)
}

// ReviewFilter narrows and paginates review listings. Label filters on the
// stored sentiment score using the standard three-way thresholds; empty
// means no label filter.
type ReviewFilter struct {
	Label string
	Page  int
	Limit int
}
