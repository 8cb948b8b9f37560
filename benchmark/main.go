// Package main provides a performance benchmarking tool for the nutriplan CLI.
// It measures execution times of every calculator and store command, running
// each one against the none backend and then the sqlite backend. The first
// successful sqlite run is treated as cold and the rest are averaged as warm.
// Results are written as CSV for performance analysis and documentation.
//
// Prerequisites:
// - nutriplan binary installed and available in PATH
//
// Usage: go run benchmark/main.go [runs]
//
//	runs: Number of runs per backend (default 5)
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (none-backend average, cold run and average of warm runs).
type BenchmarkResult struct {
	Command  string
	NoneTime string
	ColdTime string
	WarmTime string
}

// BenchmarkCase is one command line to time.
type BenchmarkCase struct {
	Name       string
	Args       []string
	Completion string // Footer printed by a successful text run
	NeedsStore bool   // Skipped on the none backend
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	Timeout  time.Duration
	Runs     int
	StoreDir string
	Cases    []BenchmarkCase
}

// profileArgs describes the profile used by every case.
var profileArgs = []string{
	"--weight", "65", "--height", "168", "--sex", "female",
	"--dob", "1996-05-20", "--activity", "light", "--goal", "lose_weight", "--target", "55",
}

func main() {
	runs := 5
	if len(os.Args) == 2 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil || n < 2 {
			fmt.Printf("Usage: %s [runs]  (runs must be at least 2)\n", os.Args[0])
			os.Exit(1)
		}
		runs = n
	} else if len(os.Args) > 2 {
		fmt.Printf("Usage: %s [runs]\n", os.Args[0])
		os.Exit(1)
	}

	storeDir, err := os.MkdirTemp("", "nutriplan-benchmark-*")
	if err != nil {
		fmt.Printf("Failed to create store directory: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = os.RemoveAll(storeDir) }()

	config := BenchmarkConfig{
		Timeout:  time.Minute,
		Runs:     runs,
		StoreDir: storeDir,
		Cases: []BenchmarkCase{
			{Name: "metrics", Args: []string{"metrics"}, Completion: "Computed in"},
			{Name: "goal", Args: []string{"goal"}, Completion: "Analysis completed in"},
			{Name: "sweep", Args: []string{"sweep", "--step", "0.1"}, Completion: "Sweep completed in"},
			{Name: "onboard", Args: []string{"onboard", "--name", "Benchmark"}, Completion: "Onboarding completed in"},
			{Name: "profile-list", Args: []string{"profile", "list"}, Completion: "Listed in", NeedsStore: true},
		},
	}

	if err := checkPrerequisites(); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the nutriplan binary exists
func checkPrerequisites() error {
	if _, err := exec.LookPath("nutriplan"); err != nil {
		return fmt.Errorf("nutriplan binary not found in PATH")
	}
	return nil
}

// runBenchmarks executes every benchmark case
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d commands, %v timeout, %d runs per backend\n",
		len(config.Cases), config.Timeout, config.Runs)

	for _, c := range config.Cases {
		results = append(results, runBenchmarkSuite(config, c))
	}
	return results
}

// average formats the mean of times, or TIMEOUT when nothing succeeded
func average(times []float64) string {
	if len(times) == 0 {
		return "TIMEOUT"
	}
	var sum float64
	for _, t := range times {
		sum += t
	}
	return fmt.Sprintf("%.3fs", sum/float64(len(times)))
}

// runBenchmarkSuite runs both backend phases for a case
func runBenchmarkSuite(config BenchmarkConfig, c BenchmarkCase) BenchmarkResult {
	fmt.Printf("Running %s\n", c.Name)

	noneAvg := "N/A"
	if !c.NeedsStore {
		fmt.Printf("  None phase (%d runs)\n", config.Runs)
		noneTimes := runBenchmark(config, c, "none")
		noneAvg = average(noneTimes)
	}

	fmt.Printf("  SQLite phase (%d runs)\n", config.Runs)
	sqliteTimes := runBenchmark(config, c, "sqlite")
	coldTimeStr, warmAvg := "TIMEOUT", "TIMEOUT"
	if len(sqliteTimes) > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", sqliteTimes[0])
		warmAvg = average(sqliteTimes[1:])
	}

	fmt.Printf("  None average: %s, Cold time: %s, Warm average: %s\n", noneAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		Command:  c.Name,
		NoneTime: noneAvg,
		ColdTime: coldTimeStr,
		WarmTime: warmAvg,
	}
}

// runBenchmark executes a nutriplan command multiple times with the given
// store backend and returns the times of the successful runs
func runBenchmark(config BenchmarkConfig, c BenchmarkCase, backend string) []float64 {
	args := append([]string{}, c.Args...)
	args = append(args, profileArgs...)
	args = append(args,
		"--store-backend", backend,
		"--store-db-connect", filepath.Join(config.StoreDir, "benchmark.db"),
		"--color", "no", "--emoji", "no")

	var times []float64
	for run := 1; run <= config.Runs; run++ {
		start := time.Now()

		cmd := exec.Command("nutriplan", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && strings.Contains(string(output), c.Completion) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
		}
	}
	return times
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/nutriplan_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"cmd", "none_avg", "sqlite_cold", "sqlite_warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, result := range results {
		if err := writer.Write([]string{result.Command, result.NoneTime, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, result := range results {
		fmt.Printf("  %-12s: None: %s, Cold: %s, Warm: %s\n", result.Command, result.NoneTime, result.ColdTime, result.WarmTime)
	}
}
