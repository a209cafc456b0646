package form

import (
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var rowKey = regexp.MustCompile(`^([A-Za-z0-9_.]+)\[(\d+)\]\[([A-Za-z0-9_]+)\]$`)

// Rows collects repeated fields named prefix[i][field] into ordered rows.
// Gaps in the index sequence are dropped.
func Rows(values url.Values, prefix string) []map[string]string {
	byIndex := map[int]map[string]string{}
	for key, vals := range values {
		m := rowKey.FindStringSubmatch(key)
		if m == nil || m[1] != prefix {
			continue
		}
		idx, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		row, ok := byIndex[idx]
		if !ok {
			row = map[string]string{}
			byIndex[idx] = row
		}
		if len(vals) > 0 {
			row[m[3]] = vals[0]
		}
	}

	indexes := make([]int, 0, len(byIndex))
	for idx := range byIndex {
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)

	rows := make([]map[string]string, len(indexes))
	for i, idx := range indexes {
		rows[i] = byIndex[idx]
	}
	return rows
}

// Action splits a submit button value such as "remove:importantDates:2".
func Action(raw string) (verb, list string, index int) {
	parts := strings.SplitN(raw, ":", 3)
	index = -1
	switch len(parts) {
	case 3:
		if n, err := strconv.Atoi(parts[2]); err == nil {
			index = n
		}
		fallthrough
	case 2:
		list = parts[1]
		fallthrough
	default:
		verb = parts[0]
	}
	return verb, list, index
}
