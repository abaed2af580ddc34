package config

import "fmt"

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// ComplaintStatsVersionKey holds the current generation of the dashboard
// counters.
func (r *CacheKeyStruct) ComplaintStatsVersionKey() string {
	return "complaints:stats:version"
}

// ComplaintStatsKey returns the cache key for one generation of the admin
// dashboard counters.
func (r *CacheKeyStruct) ComplaintStatsKey(version int64) string {
	return fmt.Sprintf("complaints:stats:v%d", version)
}

var CacheKey = NewCacheKeyStruct()
