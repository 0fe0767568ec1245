package cmd

import (
	"flag"
	"fmt"
	"os"
	"time"

	"textbookrsa/src/operations"
	"textbookrsa/src/utils"
)

// BenchmarkCommand handles the benchmark subcommand. It takes no
// positional arguments (unlike the other subcommands) since there is
// nothing domain-specific to name — it measures the kernel itself.
func BenchmarkCommand(args []string) error {
	fs := flag.NewFlagSet("benchmark", flag.ExitOnError)

	var (
		duration = fs.Duration("duration", 3*time.Second, "How long to run each sample")
		samples  = fs.Int("samples", 3, "Number of benchmark samples to take")
		nbits    = fs.Int("nbits", 512, "Bit length of the modulus to benchmark against")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s benchmark [--duration DURATION] [--samples COUNT] [--nbits N]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nBenchmark ModExp throughput against a freshly generated modulus\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	fmt.Printf("Benchmarking ModExp throughput at %d bits...\n", *nbits)
	fmt.Printf("Duration per sample: %v\n", *duration)
	fmt.Printf("Number of samples: %d\n\n", *samples)

	result, err := operations.RunBenchmark(operations.BenchmarkOptions{
		Duration: *duration,
		Samples:  *samples,
		NBits:    *nbits,
	})
	if err != nil {
		return fmt.Errorf("failed to run benchmark: %w", err)
	}

	for i, s := range result.Samples {
		fmt.Printf("Sample %d/%d: %d ops in %v (%.0f ops/sec)\n",
			i+1, len(result.Samples), s.Operations, s.Elapsed.Round(time.Millisecond), s.OpsPerSecond)
	}

	fmt.Printf("\n=== Benchmark Results ===\n")
	fmt.Printf("Average rate: %.0f ModExp/second\n", result.AvgOpsPerSecond)
	fmt.Printf("Total operations: %d\n", result.TotalOps)
	fmt.Printf("Total time: %v\n\n", result.TotalTime)

	fmt.Printf("=== Time Estimates ===\n")
	for _, est := range result.TimeEstimates {
		fmt.Printf("%d ModExp calls: %s\n", est.Operations, utils.FormatDuration(est.EstimatedTime))
	}

	return nil
}
