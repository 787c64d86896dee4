package resource

// FindingsGroupResponse is the grouped aggregation returned by the findings
// endpoint when list_parameters.group.aggregation_paths is set. Group keys
// are JSON-encoded []GroupKey arrays.
type FindingsGroupResponse struct {
	GroupResponse *GroupResponse `json:"group_response"`
}

type GroupResponse struct {
	Groups map[string]Group `json:"groups"`
}

type Group struct {
	AggregationCount AggregationCount `json:"aggregation_count"`
}

type AggregationCount struct {
	Count int64 `json:"count"`
}

type GroupKey struct {
	Key   string   `json:"key"`
	Value []string `json:"value"`
}
