package service

import (
	"encoding/json"

	"github.com/vmindtech/endor/internal/dto/resource"
)

// CountByLevel flattens a findings aggregation grouped by spec.level. The
// level is the first value of the first group key item.
func CountByLevel(resp *resource.FindingsGroupResponse) resource.CountMap {
	result := resource.CountMap{}

	for rawKey, group := range groups(resp) {
		key, ok := DecodeGroupKey(rawKey)
		if !ok || len(key[0].Value) == 0 {
			continue
		}

		add(result, key[0].Value[0], group.AggregationCount.Count)
	}

	return result
}

// CountByCategory flattens a findings aggregation grouped by
// spec.finding_categories. A group listing several categories adds its full
// count to each of them.
func CountByCategory(resp *resource.FindingsGroupResponse) resource.CountMap {
	result := resource.CountMap{}

	for rawKey, group := range groups(resp) {
		key, ok := DecodeGroupKey(rawKey)
		if !ok {
			continue
		}

		for _, item := range key {
			for _, category := range item.Value {
				add(result, category, group.AggregationCount.Count)
			}
		}
	}

	return result
}

// DecodeGroupKey parses a JSON-encoded group key. Malformed or empty keys
// report false.
func DecodeGroupKey(raw string) ([]resource.GroupKey, bool) {
	var key []resource.GroupKey
	if err := json.Unmarshal([]byte(raw), &key); err != nil {
		return nil, false
	}

	return key, len(key) > 0
}

func groups(resp *resource.FindingsGroupResponse) map[string]resource.Group {
	if resp == nil || resp.GroupResponse == nil {
		return nil
	}

	return resp.GroupResponse.Groups
}

func add(m resource.CountMap, key string, count int64) {
	c := m[key]
	c.Count += count
	m[key] = c
}
