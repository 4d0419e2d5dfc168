package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Options narrow what Tail returns.
type Options struct {
	// MaxLines caps the result to the newest lines; <= 0 returns everything.
	MaxLines int
	// Contains keeps only lines containing this substring, e.g. a request id.
	Contains string
}

// Tail returns the newest matching lines of the file at path, oldest first.
// A missing file yields no lines and no error.
func Tail(path string, opts Options) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	lines, err := scan(file, opts)
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return lines, nil
}

func scan(r io.Reader, opts Options) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if opts.MaxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			if matches(scanner.Text(), opts.Contains) {
				lines = append(lines, scanner.Text())
			}
		}
		return lines, scanner.Err()
	}

	// Ring buffer of the newest MaxLines matches.
	ring := make([]string, opts.MaxLines)
	count, idx := 0, 0
	for scanner.Scan() {
		line := scanner.Text()
		if !matches(line, opts.Contains) {
			continue
		}
		ring[idx] = line
		idx = (idx + 1) % opts.MaxLines
		if count < opts.MaxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	lines := make([]string, count)
	if count == opts.MaxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%opts.MaxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

func matches(line, needle string) bool {
	return needle == "" || strings.Contains(line, needle)
}
