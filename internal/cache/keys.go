package cache

import "fmt"

// RecommendationKey keys a cached rule-recommendation payload by the
// review-set snapshot hash it was computed from.
func RecommendationKey(snapshotHash string) string {
	return fmt.Sprintf("recommend:snapshot:%s", snapshotHash)
}

// RateLimitKey keys a per-client request counter.
func RateLimitKey(client string) string {
	return fmt.Sprintf("ratelimit:%s", client)
}
