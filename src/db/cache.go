package db

import (
	"log"
	"sync"

	"github.com/dgraph-io/ristretto"
)

// Summary cache keys are tracked separately so a snapshot change can clear
// every cached monthly summary in one sweep.
var (
	Cache           *ristretto.Cache
	SummaryCacheKeys = struct {
		sync.RWMutex
		m map[string]struct{}
	}{m: make(map[string]struct{})}
)

func InitCache() {
	var err error
	Cache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}
}

func SetSummaryCache(cacheKey string, value interface{}) {
	SummaryCacheKeys.Lock()
	SummaryCacheKeys.m[cacheKey] = struct{}{}
	SummaryCacheKeys.Unlock()
	Cache.Set(cacheKey, value, 1)
}

func GetSummaryCache(cacheKey string) (interface{}, bool) {
	return Cache.Get(cacheKey)
}

func ClearAllSummaryCaches() {
	SummaryCacheKeys.Lock()
	for key := range SummaryCacheKeys.m {
		Cache.Del(key)
	}
	SummaryCacheKeys.m = make(map[string]struct{})
	SummaryCacheKeys.Unlock()
}
