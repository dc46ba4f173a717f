package store

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/reviewlens/reviewlens/internal/sentiment"
	"github.com/reviewlens/reviewlens/pkg/models"
)

// PostgresStore implements the Store interface using pgx/v5.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Ping checks database connectivity.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) CreateReview(ctx context.Context, content string, sentimentScore float64) (*models.Review, error) {
	var r models.Review
	err := s.pool.QueryRow(ctx,
		`INSERT INTO reviews (content, sentiment_score)
		 VALUES ($1, $2)
		 RETURNING id, content, sentiment_score, created_at`,
		content, sentimentScore,
	).Scan(&r.ID, &r.Content, &r.SentimentScore, &r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return &r, nil
}

func (s *PostgresStore) GetReview(ctx context.Context, id int64) (*models.Review, error) {
	var r models.Review
	err := s.pool.QueryRow(ctx,
		`SELECT id, content, sentiment_score, created_at FROM reviews WHERE id = $1`,
		id,
	).Scan(&r.ID, &r.Content, &r.SentimentScore, &r.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}
	return &r, nil
}

func (s *PostgresStore) ListAllReviews(ctx context.Context) ([]models.Review, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, content, sentiment_score, created_at FROM reviews ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list all reviews: %w", err)
	}
	defer rows.Close()

	return scanReviews(rows)
}

// ListReviews builds the filtered query dynamically. Label conditions mirror
// the sentiment thresholds used everywhere else.
func (s *PostgresStore) ListReviews(ctx context.Context, filter ReviewFilter) ([]models.Review, int, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	base := sq.Select().From("reviews").PlaceholderFormat(sq.Dollar)
	switch filter.Label {
	case "Positive":
		base = base.Where(sq.Gt{"sentiment_score": sentiment.PositiveThreshold})
	case "Negative":
		base = base.Where(sq.Lt{"sentiment_score": sentiment.NegativeThreshold})
	case "Neutral":
		base = base.Where(sq.Or{
			sq.Eq{"sentiment_score": nil},
			sq.And{
				sq.GtOrEq{"sentiment_score": sentiment.NegativeThreshold},
				sq.LtOrEq{"sentiment_score": sentiment.PositiveThreshold},
			},
		})
	case "":
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrInvalidLabel, filter.Label)
	}

	countSQL, countArgs, err := base.Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}
	var total int
	if err := s.pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count reviews: %w", err)
	}

	listSQL, listArgs, err := base.
		Columns("id", "content", "sentiment_score", "created_at").
		OrderBy("created_at ASC", "id ASC").
		Limit(uint64(limit)).
		Offset(uint64((page - 1) * limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := s.pool.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	reviews, err := scanReviews(rows)
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func scanReviews(rows pgx.Rows) ([]models.Review, error) {
	reviews := []models.Review{}
	for rows.Next() {
		var r models.Review
		if err := rows.Scan(&r.ID, &r.Content, &r.SentimentScore, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, r)
	}
	return reviews, rows.Err()
}
