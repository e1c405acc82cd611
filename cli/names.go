package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadNamesFile reads one full name per line from path. Blank lines and lines
// starting with "#" are skipped; surrounding whitespace is trimmed.
func ReadNamesFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open names file: %w", err)
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read names file: %w", err)
	}

	return names, nil
}
