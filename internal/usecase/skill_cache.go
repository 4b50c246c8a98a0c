package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

// SkillCache is the read-through cache used for listing queries. Misses and
// cache failures fall back to the store.
type SkillCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

const skillsCachePattern = "skills:*"

func skillsListKey() string { return "skills:list:all" }
func skillsOrderedKey() string { return "skills:list:ordered" }
func skillsCategoriesKey() string { return "skills:categories" }
func skillsStatsKey() string { return "skills:stats" }

func skillsCategoryKey(category string) string {
	return "skills:list:category:" + hashKey(strings.ToLower(category))
}

func skillsBubblesKey(minProficiency int) string {
	return "skills:list:bubbles:" + strconv.Itoa(minProficiency)
}

func skillsTopKey(limit int) string {
	return "skills:list:top:" + strconv.Itoa(limit)
}

// The term is hashed rather than normalized: the match is a substring match
// and internal whitespace is significant.
func skillsSearchKey(term string) string {
	return "skills:search:" + hashKey(strings.ToLower(term))
}

func hashKey(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
