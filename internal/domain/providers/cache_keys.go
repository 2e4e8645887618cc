package providers

// Response cache keys are "<prefix>:<hash>" where the prefix names the cached
// resource, so a change to one bench can drop exactly the affected entries.
const (
	CacheKeyPrefix = "http:cache:"

	cacheScopeBenchList = "benches"
	cacheScopeBench     = "bench:"
	cacheScopeComments  = "comments:"
)

// BenchListCacheScope is the scope of every cached listing response
func BenchListCacheScope() string {
	return cacheScopeBenchList
}

// BenchCacheScope is the scope of a cached single-bench response
func BenchCacheScope(benchID string) string {
	return cacheScopeBench + benchID
}

// CommentsCacheScope is the scope of a bench's cached comment responses
func CommentsCacheScope(benchID string) string {
	return cacheScopeComments + benchID
}

// CacheKey builds the full key for a scope and request hash
func CacheKey(scope, hash string) string {
	return CacheKeyPrefix + scope + ":" + hash
}

// CachePattern matches every key of a scope
func CachePattern(scope string) string {
	return CacheKeyPrefix + scope + ":*"
}
