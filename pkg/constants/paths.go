package constants

// Endor API paths
const (
	APIKeyAuthPath = "v1/auth/api-key"
	ProjectsPath   = "v1/namespaces/%s/projects"
	ProjectPath    = "v1/namespaces/%s/projects/%s"
	FindingsPath   = "v1/namespaces/%s/findings"
)

// Endor list parameters
const (
	ListFilterParam           = "list_parameters.filter"
	ListCountParam            = "list_parameters.count"
	ListAggregationPathsParam = "list_parameters.group.aggregation_paths"

	LevelAggregationPath    = "spec.level"
	CategoryAggregationPath = "spec.finding_categories"
)

// Endor findings filters
const (
	MainContextFilter       = "spec.project_uuid==%s and context.type==CONTEXT_TYPE_MAIN"
	VulnerabilityFilter     = MainContextFilter + " and spec.finding_categories contains [FINDING_CATEGORY_VULNERABILITY]"
	ReachableFunctionFilter = MainContextFilter + ` and spec.finding_tags CONTAINS ["FINDING_TAGS_REACHABLE_FUNCTION"]`
	ProjectByNameFilter     = "meta.name==%s"
)
