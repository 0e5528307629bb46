package scraper

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadLinks reads newline-delimited URLs, skipping blank lines
func ReadLinks(r io.Reader) ([]string, error) {
	var links []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		links = append(links, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read links: %w", err)
	}
	return links, nil
}

// LoadLinks reads the link file at path
func LoadLinks(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open links file: %w", err)
	}
	defer f.Close()

	return ReadLinks(f)
}
