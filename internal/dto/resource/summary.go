package resource

type Count struct {
	Count int64 `json:"count"`
}

// CountMap maps a finding level or category to its count. Keys without
// findings are absent rather than zero.
type CountMap map[string]Count

// Get returns the count for key, or 0 when the key is absent.
func (m CountMap) Get(key string) int64 {
	return m[key].Count
}

type ProjectSummary struct {
	Name        string   `json:"name"`
	Namespace   string   `json:"namespace"`
	ProjectUUID string   `json:"projectUUID"`
	Total       CountMap `json:"total"`
	Reachable   CountMap `json:"reachable"`
	Categories  CountMap `json:"categories"`
}
