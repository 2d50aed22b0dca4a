package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/memtree-bench/pkg/adapters/redis"
	"github.com/aretw0/memtree-bench/pkg/domain"
	"github.com/aretw0/memtree-bench/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisRecorder_Contract(t *testing.T) {
	_, client := setup(t)
	ports.RunRecorderContract(t, redis.NewFromClient(client))
}

func TestRedisRecorder_MaxRuns(t *testing.T) {
	mr, client := setup(t)
	rec := redis.NewFromClient(client, redis.WithPrefix("test:"), redis.WithMaxRuns(2))
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		require.NoError(t, rec.Record(ctx, domain.RunRecord{
			Experiment: "amazoncat",
			Nodes:      i,
			Train:      domain.Timing{Elapsed: time.Duration(i) * time.Second},
		}))
	}

	runs, err := rec.List(ctx, "amazoncat", 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, 5, runs[0].Nodes)
	assert.Equal(t, 4, runs[1].Nodes)

	keys := mr.Keys()
	assert.Equal(t, []string{"test:runs:amazoncat"}, keys)
}

func TestRedisRecorder_NewFromURL(t *testing.T) {
	mr, _ := setup(t)

	rec, err := redis.New("redis://" + mr.Addr() + "/0")
	require.NoError(t, err)
	defer rec.Close()

	require.NoError(t, rec.Record(context.Background(), domain.RunRecord{Experiment: "x", Nodes: 1}))
	runs, err := rec.List(context.Background(), "x", 1)
	require.NoError(t, err)
	assert.Len(t, runs, 1)

	_, err = redis.New("not a url")
	assert.Error(t, err)
}
