package resource

type CheckStatus string

const (
	CheckStatusOK      CheckStatus = "OK"
	CheckStatusWarning CheckStatus = "WARNING"
	CheckStatusError   CheckStatus = "ERROR"
)

type SummaryReport struct {
	Name        string          `json:"name"`
	Namespace   string          `json:"namespace"`
	ProjectUUID string          `json:"projectUUID"`
	Severities  []SeverityRow   `json:"severities"`
	Groups      []CategoryGroup `json:"groups"`
}

type SeverityRow struct {
	Level         string `json:"level"`
	Label         string `json:"label"`
	Total         int64  `json:"total"`
	Reachable     int64  `json:"reachable"`
	TotalLink     string `json:"totalLink"`
	ReachableLink string `json:"reachableLink"`
}

type CategoryGroup struct {
	Title  string          `json:"title"`
	Checks []CategoryCheck `json:"checks"`
}

type CategoryCheck struct {
	Title            string      `json:"title"`
	Category         string      `json:"category"`
	Count            int64       `json:"count"`
	Status           CheckStatus `json:"status"`
	WarningThreshold int64       `json:"warningThreshold"`
	ErrorThreshold   int64       `json:"errorThreshold"`
	Explanation      string      `json:"explanation"`
	Link             string      `json:"link"`
}
