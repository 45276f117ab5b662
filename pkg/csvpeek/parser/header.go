package parser

import (
	"strconv"
	"strings"
)

// syntheticName returns the positional name for column i.
func syntheticName(i int) string {
	return "col_" + strconv.Itoa(i)
}

// columnNames derives width column names from a header record.
// A nil header yields col_0..col_{width-1}; blank header cells get their
// positional name. Duplicates are made unique with _2, _3, ... suffixes.
func columnNames(header []string, width int) []string {
	names := make([]string, width)
	for i := range names {
		if i < len(header) && strings.TrimSpace(header[i]) != "" {
			names[i] = header[i]
		} else {
			names[i] = syntheticName(i)
		}
	}
	return uniqueNames(names)
}

// uniqueNames keeps the first occurrence of every name and renames later
// ones. Generated names never collide with a name present in the input.
func uniqueNames(names []string) []string {
	used := make(map[string]bool, len(names))
	for _, n := range names {
		used[n] = true
	}

	out := make([]string, len(names))
	next := make(map[string]int, len(names))
	for i, n := range names {
		k, seen := next[n]
		if !seen {
			next[n] = 1
			out[i] = n
			continue
		}
		for {
			k++
			cand := n + "_" + strconv.Itoa(k)
			if !used[cand] {
				used[cand] = true
				next[n] = k
				out[i] = cand
				break
			}
		}
	}
	return out
}
