package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBucket_BurstThenBlock(t *testing.T) {
	// Slow refill so the burst exhausts within the test
	bucket := newTokenBucket(3, 0.001)

	for i := 0; i < 3; i++ {
		assert.True(t, bucket.allow(), "request %d within burst", i+1)
	}
	assert.False(t, bucket.allow(), "burst exhausted")
}

func TestTokenBucket_Refills(t *testing.T) {
	bucket := newTokenBucket(1, 100) // 100 tokens/sec
	require.True(t, bucket.allow())
	require.False(t, bucket.allow())

	assert.Eventually(t, bucket.allow, time.Second, 5*time.Millisecond)
}

func TestTokenBucket_Status(t *testing.T) {
	bucket := newTokenBucket(5, 1)

	remaining, _ := bucket.getStatus()
	assert.Equal(t, 5, remaining)

	bucket.allow()
	remaining, resetTime := bucket.getStatus()
	assert.Equal(t, 4, remaining)
	assert.True(t, resetTime.After(time.Now().Add(-time.Second)))
}

func TestLimiter_EnforcesEndpointBurst(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Method: "POST", Suffix: "/analysis", Limit: 30, Window: time.Minute, Burst: 2},
		},
	})
	defer limiter.Stop()

	path := "/sessions/abc-123/analysis"
	allowed, info := limiter.Allow("client-a", path, "POST")
	assert.True(t, allowed)
	assert.Equal(t, 30, info.Limit)

	allowed, _ = limiter.Allow("client-a", path, "POST")
	assert.True(t, allowed)

	allowed, info = limiter.Allow("client-a", path, "POST")
	assert.False(t, allowed, "burst of 2 exhausted")
	assert.GreaterOrEqual(t, info.RetryAfter, time.Duration(0))

	// Other clients have their own buckets
	allowed, _ = limiter.Allow("client-b", path, "POST")
	assert.True(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, info := limiter.Allow("client", "/sessions", "POST")
		require.True(t, allowed)
		assert.True(t, info.Allowed)
	}
}

func TestLimiter_SeparateBucketsPerMethod(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Method: "POST", Suffix: "/roadmap", Limit: 10, Window: time.Minute, Burst: 1},
		},
	})
	defer limiter.Stop()

	path := "/sessions/abc-123/roadmap"
	allowed, _ := limiter.Allow("client", path, "POST")
	require.True(t, allowed)
	allowed, _ = limiter.Allow("client", path, "POST")
	require.False(t, allowed)

	// GET on the same path falls through to the default limit
	allowed, _ = limiter.Allow("client", path, "GET")
	assert.True(t, allowed)
}

func TestMatchEndpoint_SuffixMatching(t *testing.T) {
	configs := DefaultEndpointConfigs()

	cfg := MatchEndpoint("/sessions/9f2c1a/profile/file", "POST", configs)
	require.NotNil(t, cfg)
	assert.Equal(t, "/profile/file", cfg.Suffix)
	assert.Equal(t, 30, cfg.Limit)

	cfg = MatchEndpoint("/sessions", "POST", configs)
	require.NotNil(t, cfg)
	assert.Equal(t, 60, cfg.Limit)
}

func TestMatchEndpoint_MethodMismatch(t *testing.T) {
	configs := DefaultEndpointConfigs()

	// GET on a POST-limited suffix uses the default limit
	cfg := MatchEndpoint("/sessions/9f2c1a/analysis", "GET", configs)
	assert.Nil(t, cfg)
}

func TestMatchEndpoint_HealthUnlimited(t *testing.T) {
	cfg := MatchEndpoint("/health", "GET", DefaultEndpointConfigs())
	require.NotNil(t, cfg)
	assert.Equal(t, 0, cfg.Limit)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 1000, cfg.DefaultLimit)
	assert.Equal(t, time.Minute, cfg.DefaultWindow)
	assert.NotEmpty(t, cfg.EndpointConfigs)
}

func TestLoadConfig_DisabledViaEnv(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "250")
	t.Setenv("RATE_LIMIT_DEFAULT_WINDOW", "30s")

	cfg := LoadConfig()
	assert.Equal(t, 250, cfg.DefaultLimit)
	assert.Equal(t, 30*time.Second, cfg.DefaultWindow)
}
