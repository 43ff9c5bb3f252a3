package integration

import (
	"os"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/iwvelando/mortgage-compare/internal/compare"
	"github.com/iwvelando/mortgage-compare/internal/config"
)

func TestMain(m *testing.M) {
	code := m.Run()
	os.Exit(code)
}

// TestPerformance tests performance characteristics
func TestPerformance(t *testing.T) {
	// Create a no-op logger to avoid debug output during testing
	logger := zap.NewNop()

	start := time.Now()

	conf, err := config.LoadConfiguration("../test_config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}
	loadTime := time.Since(start)

	start = time.Now()
	results, err := compare.Run(logger, conf)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	computeTime := time.Since(start)

	totalTime := loadTime + computeTime

	t.Logf("Performance metrics:")
	t.Logf("  Load config: %v", loadTime)
	t.Logf("  Compute schedules: %v", computeTime)
	t.Logf("  Total time: %v", totalTime)

	// Performance expectations (adjust as needed)
	if totalTime > 10*time.Second {
		t.Errorf("Total processing time %v exceeds 10 second threshold", totalTime)
	}

	if len(results) != 4 {
		t.Errorf("Expected 4 results, got %d", len(results))
	}

	// Check that we have a reasonable amount of schedule data
	for i, result := range results {
		if len(result.Schedule) < 100 {
			t.Errorf("Scenario %d (%s) has only %d schedule records, expected more",
				i, result.Name, len(result.Schedule))
		}
	}
}

// TestMemoryUsage performs basic memory usage validation
func TestMemoryUsage(t *testing.T) {
	// Create a no-op logger to avoid debug output during testing
	logger := zap.NewNop()

	// Run multiple iterations to check for memory leaks
	for i := 0; i < 10; i++ {
		conf, err := config.LoadConfiguration("../test_config.yaml")
		if err != nil {
			t.Fatalf("LoadConfiguration failed on iteration %d: %v", i, err)
		}

		if _, err := compare.Run(logger, conf); err != nil {
			t.Fatalf("Run failed on iteration %d: %v", i, err)
		}
	}

	t.Log("Successfully completed 10 iterations without memory issues")
}

// TestRepeatedRunsConsistency validates that multiple runs produce identical results
func TestRepeatedRunsConsistency(t *testing.T) {
	// Create a no-op logger to avoid debug output during testing
	logger := zap.NewNop()

	var firstResults []compare.Result

	for run := 0; run < 3; run++ {
		conf, err := config.LoadConfiguration("../test_config.yaml")
		if err != nil {
			t.Fatalf("LoadConfiguration failed on run %d: %v", run, err)
		}

		results, err := compare.Run(logger, conf)
		if err != nil {
			t.Fatalf("Run failed on run %d: %v", run, err)
		}

		if run == 0 {
			firstResults = results
			continue
		}

		// Compare with first run
		if len(results) != len(firstResults) {
			t.Errorf("Run %d: got %d results, expected %d", run, len(results), len(firstResults))
			continue
		}

		for i, result := range results {
			firstResult := firstResults[i]

			if result.Name != firstResult.Name {
				t.Errorf("Run %d, scenario %d: name mismatch %s != %s",
					run, i, result.Name, firstResult.Name)
			}

			if !result.Summary.TotalInterest.Equal(firstResult.Summary.TotalInterest) {
				t.Errorf("Run %d, scenario %d: total interest mismatch %s != %s",
					run, i, result.Summary.TotalInterest, firstResult.Summary.TotalInterest)
			}

			if len(result.Schedule) != len(firstResult.Schedule) {
				t.Errorf("Run %d, scenario %d: schedule length mismatch %d != %d",
					run, i, len(result.Schedule), len(firstResult.Schedule))
				continue
			}

			// Check a few key schedule records
			checkPeriods := []int{1, 12, 120}
			for _, period := range checkPeriods {
				if period > len(result.Schedule) {
					continue
				}
				got := result.Schedule[period-1].RemainingBalance
				expected := firstResult.Schedule[period-1].RemainingBalance

				if !got.Equal(expected) {
					t.Errorf("Run %d, scenario %d, period %d: balance mismatch %s != %s",
						run, i, period, got, expected)
				}
			}
		}
	}

	t.Log("Schedules verified identical across multiple runs")
}
