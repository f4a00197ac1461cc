package repository

import (
	"fmt"
	"strings"
)

// createHeaderMap maps column names to their indices. Every required column
// must be present; optional columns are mapped only when found.
func createHeaderMap(header []string, required []string, optional []string) (map[string]int, error) {
	columnMap := make(map[string]int)

	find := func(column string) (int, bool) {
		for i, field := range header {
			if strings.EqualFold(column, strings.TrimSpace(field)) {
				return i, true
			}
		}
		return -1, false
	}

	for _, column := range required {
		i, found := find(column)
		if !found {
			return nil, fmt.Errorf("required field '%s' not found in CSV header", column)
		}
		columnMap[column] = i
	}

	for _, column := range optional {
		if i, found := find(column); found {
			columnMap[column] = i
		}
	}

	return columnMap, nil
}

// field returns the value of column in row, or "" when the column is unmapped or the row is short
func field(row []string, columnMap map[string]int, column string) string {
	i, ok := columnMap[column]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
