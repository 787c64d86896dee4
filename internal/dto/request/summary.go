package request

// SummaryRequest identifies the project to summarize. Either ProjectUUID or
// RepoURL must be present; Namespace overrides the configured one.
type SummaryRequest struct {
	ProjectUUID string `json:"projectUUID" validate:"required_without=RepoURL"`
	RepoURL     string `json:"repoUrl" validate:"required_without=ProjectUUID"`
	Namespace   string `json:"namespace"`
}
