package constants

// Summary error kinds returned by the summary endpoints. They double as
// message IDs in the locale bundle.
const (
	ErrTypeMissingAnnotation = "MISSING_ANNOTATION"
	ErrTypeProjectNotFound   = "PROJECT_NOT_FOUND"
	ErrTypeRepoNotFound      = "REPO_NOT_FOUND"
	ErrTypeAPIError          = "API_ERROR"
)

const (
	FailedStatus = "failed"
	OKStatus     = "ok"
)

// Upstream operations, used to name the failing sub-fetch.
const (
	OpAuthenticate      = "authenticate"
	OpGetProject        = "get project"
	OpGetProjectByRepo  = "get project by repo url"
	OpTotalFindings     = "get total vulnerabilities"
	OpReachableFindings = "get reachable vulnerabilities"
	OpCategoryFindings  = "get findings by category"
)
