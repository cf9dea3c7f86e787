// Package iplog extracts IPv4 addresses from access-log lines and loads them
// from a configurable input source: a log file, an in-memory fallback
// dataset, or both.
package iplog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"
)

// ErrNoSource is returned by Loader.Load when neither a file path nor a
// fallback dataset is configured.
var ErrNoSource = errors.New("iplog: no input source configured")

// ipPattern matches the first IPv4-looking token in a log line.
var ipPattern = regexp.MustCompile(`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`)

// Sample is a small embedded access-log dataset used as a fallback when no
// real log file is available. It contains four requests from three distinct
// addresses.
var Sample = []string{
	"192.168.1.1 - - [11/May/2025:12:00:00] GET /index.html",
	"192.168.1.2 - - [11/May/2025:12:00:01] GET /page1.html",
	"192.168.1.1 - - [11/May/2025:12:00:02] POST /submit.html",
	"192.168.1.3 - - [11/May/2025:12:00:03] GET /page2.html",
}

// Extract returns the first IPv4 address found in each line, in line order.
// Lines without an address are skipped.
func Extract(lines []string) []string {
	addrs := make([]string, 0, len(lines))
	for _, line := range lines {
		if match := ipPattern.FindString(line); match != "" {
			addrs = append(addrs, match)
		}
	}
	return addrs
}

// Read extracts addresses from r line by line.
func Read(r io.Reader) ([]string, error) {
	var addrs []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if match := ipPattern.FindString(scanner.Text()); match != "" {
			addrs = append(addrs, match)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("iplog: read log: %w", err)
	}

	return addrs, nil
}

// Loader describes where log lines come from. When Path is set, the file is
// read; if it does not exist and Fallback is non-nil, the fallback lines are
// used instead. Other file errors are reported to the caller. With no Path,
// Fallback alone serves as the source.
type Loader struct {
	Path     string
	Fallback []string
}

// Load returns the addresses extracted from the configured source.
func (l Loader) Load() ([]string, error) {
	if l.Path != "" {
		f, err := os.Open(l.Path)
		switch {
		case err == nil:
			defer f.Close()
			return Read(f)
		case errors.Is(err, fs.ErrNotExist) && l.Fallback != nil:
			return Extract(l.Fallback), nil
		default:
			return nil, fmt.Errorf("iplog: open log: %w", err)
		}
	}

	if l.Fallback != nil {
		return Extract(l.Fallback), nil
	}

	return nil, ErrNoSource
}
