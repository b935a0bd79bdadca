package datasets

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

func parseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty string")
	}
	return strconv.Atoi(s)
}

// countDistinct counts the distinct values of one label over all records
func countDistinct(records []Record, label func(Record) int) int {
	seen := make(map[int]struct{}, len(records))
	for _, r := range records {
		seen[label(r)] = struct{}{}
	}
	return len(seen)
}

// FindCSVInAssets finds CSV files in a specified directory
func FindCSVInAssets(dir string) (string, error) {
	pattern := filepath.Join(dir, "*.csv")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no CSV files found in %s", dir)
	}
	return matches[0], nil
}
