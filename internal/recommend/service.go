package recommend

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/reviewlens/reviewlens/internal/basket"
	"github.com/reviewlens/reviewlens/internal/cache"
	"github.com/reviewlens/reviewlens/internal/mining"
	"github.com/reviewlens/reviewlens/internal/sentiment"
	"github.com/reviewlens/reviewlens/internal/store"
	"github.com/reviewlens/reviewlens/pkg/models"
)

// Output is the recommendations payload: rule-based recommendations plus one
// keyword-based recommendation per stored review.
type Output struct {
	ProductRecommendations []models.Recommendation `json:"product_recommendations"`
	SimpleRecommendations  []string                `json:"simple_recommendations"`
}

// Service runs the full analytics pipeline over the stored review corpus.
// Each call recomputes from scratch; the rule-based half is cached under a
// hash of the review-set snapshot so unchanged corpora skip the mining run.
type Service struct {
	store     store.Store
	cache     cache.Cache
	analyzer  *sentiment.Analyzer
	extractor *basket.Extractor
	miner     *mining.Miner
	keywords  *KeywordComposer
	cacheTTL  time.Duration
}

// NewService creates a Service. cache may be nil to disable snapshot caching.
func NewService(st store.Store, ca cache.Cache, analyzer *sentiment.Analyzer,
	extractor *basket.Extractor, miner *mining.Miner, keywords *KeywordComposer,
	cacheTTL time.Duration) *Service {
	return &Service{
		store:     st,
		cache:     ca,
		analyzer:  analyzer,
		extractor: extractor,
		miner:     miner,
		keywords:  keywords,
		cacheTTL:  cacheTTL,
	}
}

// Recommendations computes both recommendation kinds over all stored reviews.
// An empty corpus yields empty lists, not an error.
func (s *Service) Recommendations(ctx context.Context) (Output, error) {
	reviews, err := s.store.ListAllReviews(ctx)
	if err != nil {
		return Output{}, fmt.Errorf("list reviews: %w", err)
	}

	out := Output{
		ProductRecommendations: []models.Recommendation{},
		SimpleRecommendations:  []string{},
	}
	if len(reviews) == 0 {
		return out, nil
	}

	texts := make([]string, len(reviews))
	for i, r := range reviews {
		texts[i] = r.Content
	}
	out.SimpleRecommendations = s.keywords.Compose(texts)

	snapshot := snapshotHash(reviews)
	if cached, ok := s.cachedRecommendations(ctx, snapshot); ok {
		out.ProductRecommendations = cached
		return out, nil
	}

	transactions := basket.Build(s.extractor, reviews)
	items := make([][]string, len(transactions))
	for i, tx := range transactions {
		items[i] = tx.Items
	}
	mined := s.miner.Mine(items)
	out.ProductRecommendations = Compose(transactions, s.scores(reviews), mined.Rules)

	s.storeRecommendations(ctx, snapshot, out.ProductRecommendations)
	return out, nil
}

// SentimentSummary aggregates stored sentiment scores into label counts.
func (s *Service) SentimentSummary(ctx context.Context) (sentiment.Summary, error) {
	reviews, err := s.store.ListAllReviews(ctx)
	if err != nil {
		return sentiment.Summary{}, fmt.Errorf("list reviews: %w", err)
	}
	scores := make([]*float64, len(reviews))
	for i, r := range reviews {
		scores[i] = r.SentimentScore
	}
	return sentiment.Summarize(scores), nil
}

// scores returns the compound score per review ID, preferring the score
// stored at submission time and rescoring only legacy rows without one.
func (s *Service) scores(reviews []models.Review) map[int64]float64 {
	scores := make(map[int64]float64, len(reviews))
	for _, r := range reviews {
		if r.SentimentScore != nil {
			scores[r.ID] = *r.SentimentScore
		} else {
			scores[r.ID] = s.analyzer.Score(r.Content)
		}
	}
	return scores
}

func (s *Service) cachedRecommendations(ctx context.Context, snapshot string) ([]models.Recommendation, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, found, err := s.cache.Get(ctx, cache.RecommendationKey(snapshot))
	if err != nil {
		slog.Warn("recommendation cache read failed", "error", err)
		return nil, false
	}
	if !found {
		return nil, false
	}
	var recs []models.Recommendation
	if err := json.Unmarshal(raw, &recs); err != nil {
		slog.Warn("recommendation cache entry malformed", "error", err)
		return nil, false
	}
	return recs, true
}

func (s *Service) storeRecommendations(ctx context.Context, snapshot string, recs []models.Recommendation) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(recs)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cache.RecommendationKey(snapshot), raw, s.cacheTTL); err != nil {
		slog.Warn("recommendation cache write failed", "error", err)
	}
}

// snapshotHash fingerprints the review corpus by ID and stored score. Any
// new review changes the hash, so stale cache entries are never served for
// a changed corpus.
func snapshotHash(reviews []models.Review) string {
	h := sha256.New()
	for _, r := range reviews {
		h.Write([]byte(strconv.FormatInt(r.ID, 10)))
		h.Write([]byte{':'})
		if r.SentimentScore != nil {
			h.Write([]byte(strconv.FormatFloat(*r.SentimentScore, 'g', -1, 64)))
		}
		h.Write([]byte{';'})
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
