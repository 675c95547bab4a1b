package session

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/abhisek/casesim/internal/casebank"
)

func TestRedisKey(t *testing.T) {
	if got := redisKey("abc"); got != "casesim:session:abc" {
		t.Errorf("redisKey = %q", got)
	}
}

// openTestRedis connects to CASESIM_TEST_REDIS_URL or skips.
func openTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	url := os.Getenv("CASESIM_TEST_REDIS_URL")
	if url == "" {
		t.Skip("CASESIM_TEST_REDIS_URL not set")
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		t.Fatalf("parse redis url: %v", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("redis unreachable: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestRedisStore_RoundTrip(t *testing.T) {
	client := openTestRedis(t)
	ctx := context.Background()
	s := NewRedisStore(client, time.Minute)

	st := New(&fixedPicker{diagnosis: casebank.SchizoaffectiveManic})
	st.Reveal(casebank.SectionInvestigations)
	if err := s.Save(ctx, st); err != nil {
		t.Fatalf("Save: %v", err)
	}
	t.Cleanup(func() { _ = s.Delete(ctx, st.ID) })

	got, err := s.Get(ctx, st.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Case.Diagnosis != casebank.SchizoaffectiveManic || !got.IsRevealed(casebank.SectionInvestigations) {
		t.Errorf("got %+v revealed %v", got.Case.Diagnosis, got.Revealed())
	}

	ttl, err := client.TTL(ctx, redisKey(st.ID)).Result()
	if err != nil || ttl <= 0 {
		t.Errorf("TTL = %v, %v; want positive", ttl, err)
	}

	if err := s.Delete(ctx, st.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, st.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("after delete err = %v, want ErrNotFound", err)
	}
}
