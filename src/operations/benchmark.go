package operations

import (
	"fmt"
	"math/big"
	"time"

	"textbookrsa/src/bignum"
	"textbookrsa/src/rsa"
	"textbookrsa/src/utils"
)

// BenchmarkOptions contains the parameters needed for benchmarking.
type BenchmarkOptions struct {
	Duration time.Duration
	Samples  int
	NBits    int
}

// BenchmarkSample represents a single benchmark sample.
type BenchmarkSample struct {
	Operations   uint64
	Elapsed      time.Duration
	OpsPerSecond float64
}

// BenchmarkResult contains the results of the benchmark operation.
type BenchmarkResult struct {
	NBits           int
	Samples         []BenchmarkSample
	TotalOps        uint64
	TotalTime       time.Duration
	AvgOpsPerSecond float64
	TimeEstimates   []TimeEstimate
}

// TimeEstimate represents an estimated time for a given number of
// ModExp calls.
type TimeEstimate struct {
	Operations    uint64
	EstimatedTime time.Duration
}

// RunBenchmark measures ModExp throughput against a freshly generated
// modulus of opts.NBits, the same "generate a realistic modulus, then
// hammer the kernel operation in a tight loop" shape the teacher used to
// benchmark modular squaring.
func RunBenchmark(opts BenchmarkOptions) (*BenchmarkResult, error) {
	priv, err := rsa.Generate(opts.NBits, bignum.CryptoRandSource)
	if err != nil {
		return nil, fmt.Errorf("generating benchmark key: %w", err)
	}

	var samples []BenchmarkSample
	var totalOps uint64
	var totalTime time.Duration

	for i := 0; i < opts.Samples; i++ {
		ops, elapsed := benchmarkModExp(priv.N, priv.E, opts.Duration)
		opsPerSecond := float64(ops) / elapsed.Seconds()

		samples = append(samples, BenchmarkSample{
			Operations:   ops,
			Elapsed:      elapsed,
			OpsPerSecond: opsPerSecond,
		})
		totalOps += ops
		totalTime += elapsed
	}

	avgOpsPerSecond := float64(totalOps) / totalTime.Seconds()

	opCounts := []uint64{1000, 100000, 10000000}
	var estimates []TimeEstimate
	for _, n := range opCounts {
		estimates = append(estimates, TimeEstimate{
			Operations:    n,
			EstimatedTime: utils.EstimateTime(n, avgOpsPerSecond),
		})
	}

	return &BenchmarkResult{
		NBits:           opts.NBits,
		Samples:         samples,
		TotalOps:        totalOps,
		TotalTime:       totalTime,
		AvgOpsPerSecond: avgOpsPerSecond,
		TimeEstimates:   estimates,
	}, nil
}

// benchmarkModExp calls ModExp in a batch loop for the given duration and
// returns the number of calls performed and the actual elapsed time.
func benchmarkModExp(n, e *big.Int, duration time.Duration) (uint64, time.Duration) {
	x := big.NewInt(12345)
	x.Mod(x, n)

	var operations uint64
	start := time.Now()
	end := start.Add(duration)

	for time.Now().Before(end) {
		for i := 0; i < 100; i++ {
			x = bignum.ModExp(x, e, n)
			operations++
		}
	}

	return operations, time.Since(start)
}
