package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Global state for listing-read reporting
var (
	entriesRead atomic.Uint64
	bytesRead   atomic.Uint64
	done        chan struct{}
	running     bool
	mu          sync.Mutex
	testMode    bool
)

// Init starts periodic reporting of listing throughput. Listings carry no
// entry count up front, so the reporter shows volume and rates rather than
// percentages.
func Init() {
	mu.Lock()
	defer mu.Unlock()

	if running {
		return
	}

	entriesRead.Store(0)
	bytesRead.Store(0)
	done = make(chan struct{})
	running = true
	go logger()
}

// SetTestMode enables or disables test mode
// In test mode, progress output is minimal to avoid cluttering test output
func SetTestMode(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	testMode = enabled
}

// Stop stops the progress reporting
func Stop() {
	mu.Lock()
	defer mu.Unlock()

	if running {
		close(done)
		running = false
	}
}

// AddEntries adds decoded listing records to the counter
func AddEntries(n uint64) {
	if n > 0 {
		entriesRead.Add(n)
	}
}

// AddBytes adds raw listing bytes to the counter
func AddBytes(n uint64) {
	if n > 0 {
		bytesRead.Add(n)
	}
}

// formatSize returns a human-readable size string
func formatSize(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// formatCount returns a human-readable entry count string
func formatCount(entries uint64) string {
	const unit = 1000
	if entries < unit {
		return fmt.Sprintf("%d", entries)
	}
	div, exp := uint64(unit), 0
	for n := entries / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f%c", float64(entries)/float64(div), "kMBT"[exp])
}

// formatRate returns a human-readable byte rate string
func formatRate(bytesPerSec uint64) string {
	const unit = 1024
	if bytesPerSec < unit {
		return fmt.Sprintf("%d B/s", bytesPerSec)
	}
	div, exp := uint64(unit), 0
	for n := bytesPerSec / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB/s", float64(bytesPerSec)/float64(div), "KMGTPE"[exp])
}

// logger reports reading progress periodically until Stop
func logger() {
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	var prevEntries, prevBytes uint64
	startTime := time.Now()
	lastOutputTime := time.Now()

	if testMode {
		fmt.Printf("[TEST] Progress reporting started\n")
	} else {
		fmt.Printf("Reading listing...\n")
	}

	for {
		select {
		case <-ticker.C:
			currentEntries := entriesRead.Load()
			currentBytes := bytesRead.Load()
			entryRate := (currentEntries - prevEntries) * 4 // Entries per second (250ms interval)
			byteRate := (currentBytes - prevBytes) * 4
			prevEntries = currentEntries
			prevBytes = currentBytes

			if testMode {
				// Keep test output quiet; the summary on Stop is enough.
				continue
			}

			// Limit output to one line per second.
			if time.Since(lastOutputTime) < time.Second {
				continue
			}
			lastOutputTime = time.Now()
			fmt.Printf("Read %s entries (%s) | %s entries/s | %s\n",
				formatCount(currentEntries), formatSize(currentBytes),
				formatCount(entryRate), formatRate(byteRate))
			os.Stdout.Sync()
		case <-done:
			if testMode {
				fmt.Printf("[TEST] Progress reporting stopped\n")
				return
			}
			totalTime := time.Since(startTime).Seconds()
			if totalTime < 0.001 {
				totalTime = 0.001
			}
			avgRate := uint64(float64(entriesRead.Load()) / totalTime)
			fmt.Printf("Read %s entries (%s) in %.1f seconds (avg %s entries/s)\n",
				formatCount(entriesRead.Load()), formatSize(bytesRead.Load()),
				totalTime, formatCount(avgRate))
			return
		}
	}
}

// Reader is a reader that tracks bytes read for progress reporting
type Reader struct {
	R io.Reader
}

// Read implements io.Reader and tracks bytes delivered
func (pr *Reader) Read(p []byte) (n int, err error) {
	n, err = pr.R.Read(p)
	if n > 0 {
		AddBytes(uint64(n))
	}
	return
}
