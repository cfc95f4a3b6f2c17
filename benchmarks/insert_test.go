package benchmarks

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"strconv"
	"testing"
	"time"

	"github.com/corvidlabs/hnsw/hnsw"
	"github.com/corvidlabs/hnsw/vector"
)

// BenchmarkHNSWConstruction measures build throughput across a range of
// corpus sizes. Set HNSW_RAND_SEED to pin the generated vectors across
// runs; unset, it falls back to a fixed default so results stay
// comparable locally.
func BenchmarkHNSWConstruction(b *testing.B) {
	seedStr := os.Getenv("HNSW_RAND_SEED")
	seedVal := uint64(42)
	if seedStr != "" {
		if val, err := strconv.ParseUint(seedStr, 10, 64); err == nil {
			seedVal = val
		}
	}
	rng := rand.New(rand.NewPCG(seedVal, seedVal))

	runtime.GC()

	configs := []struct {
		name      string
		numVecs   int
		dimension int
	}{
		{"small", 1000, 128},
		{"medium", 10000, 128},
		{"large", 100000, 128},
	}

	for _, cfg := range configs {
		vectors := generateRandomVectorsWithRNG(cfg.numVecs, cfg.dimension, rng)

		b.Run(fmt.Sprintf("Build_%s_%dv_%dd", cfg.name, cfg.numVecs, cfg.dimension), func(b *testing.B) {
			fmt.Printf("NumCPU: %d, GOMAXPROCS: %d\n", runtime.NumCPU(), runtime.GOMAXPROCS(0))

			b.ResetTimer()
			b.ReportAllocs()

			var totalInsertTime time.Duration
			var totalVectors int

			for i := 0; i < b.N; i++ {
				b.StopTimer()
				store := vector.NewStore(cfg.dimension)
				builder, err := hnsw.NewBuilder(hnsw.DefaultConfig(cfg.dimension), store)
				if err != nil {
					b.Fatalf("NewBuilder: %v", err)
				}
				for _, v := range vectors {
					if _, err := builder.Add(v); err != nil {
						b.Fatalf("Add: %v", err)
					}
				}
				runtime.GC()
				b.StartTimer()

				start := time.Now()
				if err := builder.Build(context.Background()); err != nil {
					b.Fatalf("Build: %v", err)
				}
				elapsed := time.Since(start)
				totalInsertTime += elapsed
				totalVectors += cfg.numVecs

				vectorsPerSecond := float64(cfg.numVecs) / elapsed.Seconds()
				b.ReportMetric(vectorsPerSecond, "vectors/sec")
			}

			avgVectorsPerSecond := float64(totalVectors) / totalInsertTime.Seconds()
			fmt.Printf("Average build rate: %.2f vectors/sec\n", avgVectorsPerSecond)
		})
	}
}

// BenchmarkHNSWSearch measures query throughput against a single
// pre-built index.
func BenchmarkHNSWSearch(b *testing.B) {
	const numVecs = 20000
	const dimension = 128
	rng := rand.New(rand.NewPCG(42, 42))
	vectors := generateRandomVectorsWithRNG(numVecs, dimension, rng)

	store := vector.NewStore(dimension)
	builder, err := hnsw.NewBuilder(hnsw.DefaultConfig(dimension), store)
	if err != nil {
		b.Fatalf("NewBuilder: %v", err)
	}
	for _, v := range vectors {
		if _, err := builder.Add(v); err != nil {
			b.Fatalf("Add: %v", err)
		}
	}
	if err := builder.Build(context.Background()); err != nil {
		b.Fatalf("Build: %v", err)
	}
	idx, err := builder.Index()
	if err != nil {
		b.Fatalf("Index: %v", err)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		q := vectors[i%len(vectors)]
		if _, err := idx.Search(q, 10, 800); err != nil {
			b.Fatalf("Search: %v", err)
		}
	}
}

func generateRandomVectorsWithRNG(count, dim int, rng *rand.Rand) [][]float32 {
	vectors := make([][]float32, count)
	for i := range vectors {
		vectors[i] = make([]float32, dim)
		for j := range vectors[i] {
			vectors[i][j] = rng.Float32()
		}
	}
	return vectors
}

func generateRandomVectors(count, dim int) [][]float32 {
	rng := rand.New(rand.NewPCG(1, 1))
	return generateRandomVectorsWithRNG(count, dim, rng)
}
