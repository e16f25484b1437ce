// Package integration provides integration tests for the COP estimation
// pipeline.
//
// This file contains concurrent access tests verifying thread safety of the
// embedded dataset client and determinism of the computation pipeline under
// high concurrency (100+ goroutines).
//
// Run with: go test ./test/integration/... -v -run Concurrent
package integration

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/heatpump-cop/internal/fielddata"
	"github.com/rshade/heatpump-cop/internal/trend"
)

const (
	// numGoroutines is the number of concurrent goroutines for stress testing.
	numGoroutines = 150

	// numIterations is the number of iterations per goroutine.
	numIterations = 10
)

// TestConcurrentAccess_DatasetClient verifies that a shared dataset client
// serves lookups safely: the embedded data loads once and every goroutine
// sees the same series.
func TestConcurrentAccess_DatasetClient(t *testing.T) {
	client, err := fielddata.NewClient(zerolog.Nop())
	require.NoError(t, err)

	var wg sync.WaitGroup
	errors := make(chan error, numGoroutines*numIterations)
	results := make(chan int, numGoroutines*numIterations)

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < numIterations; j++ {
				ds, ok := client.Dataset(fielddata.DefaultName)
				if !ok {
					errors <- assert.AnError
					return
				}
				results <- len(ds.Points)
			}
		}()
	}

	wg.Wait()
	close(errors)
	close(results)

	require.Empty(t, errors, "no errors should occur during concurrent access")

	for count := range results {
		assert.Equal(t, 7, count, "every goroutine sees the full reference series")
	}
}

// TestConcurrentAccess_TrendPipeline verifies that concurrent fits and
// scatter generations produce identical results for identical inputs.
func TestConcurrentAccess_TrendPipeline(t *testing.T) {
	client, err := fielddata.NewClient(zerolog.Nop())
	require.NoError(t, err)
	ds := client.Default()

	reference, err := trend.Fit(ds.Temperatures(), ds.MeanCOPs(), 3)
	require.NoError(t, err)
	refScatter, err := trend.GenerateScatter(reference, trend.DefaultScatterConfig())
	require.NoError(t, err)

	var wg sync.WaitGroup
	errors := make(chan error, numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			poly, err := trend.Fit(ds.Temperatures(), ds.MeanCOPs(), 3)
			if err != nil {
				errors <- err
				return
			}
			for k, c := range poly.Coeffs {
				if c != reference.Coeffs[k] {
					errors <- assert.AnError
					return
				}
			}

			scatter, err := trend.GenerateScatter(poly, trend.DefaultScatterConfig())
			if err != nil {
				errors <- err
				return
			}
			if scatter.COP[0] != refScatter.COP[0] || scatter.TempC[0] != refScatter.TempC[0] {
				errors <- assert.AnError
			}
		}()
	}

	wg.Wait()
	close(errors)

	require.Empty(t, errors, "concurrent pipelines must be deterministic")
}
