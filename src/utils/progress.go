package utils

import (
	"fmt"
	"time"
)

// BlockProgressBar reports progress while encrypt/decrypt crypts a message
// block by block. A batch crypt operation has no meaningful "bar" to draw —
// just a block count, a percentage and the elapsed time — so unlike a
// general-purpose progress bar
// this carries no width/ETA machinery, only a throttled status line.
type BlockProgressBar struct {
	total     uint64
	current   uint64
	startTime time.Time
	lastPrint time.Time
}

// NewProgressBar creates a reporter for a crypt operation over total blocks.
func NewProgressBar(total uint64) *BlockProgressBar {
	return &BlockProgressBar{
		total:     total,
		startTime: time.Now(),
		lastPrint: time.Now(),
	}
}

// Update records that current of total blocks have been crypted so far.
// Prints at most once every 100ms to avoid flooding the terminal.
func (pb *BlockProgressBar) Update(current uint64) {
	pb.current = current

	now := time.Now()
	if now.Sub(pb.lastPrint) < 100*time.Millisecond && current < pb.total {
		return
	}
	pb.lastPrint = now
	pb.print()
}

// Finish reports the final count and moves output to a fresh line.
func (pb *BlockProgressBar) Finish() {
	pb.current = pb.total
	pb.print()
	fmt.Println()
}

func (pb *BlockProgressBar) print() {
	percentage := float64(pb.current) / float64(pb.total) * 100
	elapsed := time.Since(pb.startTime).Round(time.Second)
	fmt.Printf("\rCrypted %d/%d blocks (%.1f%%), elapsed %v", pb.current, pb.total, percentage, elapsed)
}

// EstimateTime estimates the time required for a given number of
// operations based on a benchmarked rate (operations per second).
func EstimateTime(operations uint64, opsPerSecond float64) time.Duration {
	if opsPerSecond <= 0 {
		return 0
	}
	seconds := float64(operations) / opsPerSecond
	return time.Duration(seconds * float64(time.Second))
}

// FormatDuration formats a duration the way benchmark estimates are
// printed: seconds below a minute, minutes below an hour, and so on.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%.1fm", d.Minutes())
	case d < 24*time.Hour:
		return fmt.Sprintf("%.1fh", d.Hours())
	default:
		return fmt.Sprintf("%.1fd", d.Hours()/24)
	}
}
