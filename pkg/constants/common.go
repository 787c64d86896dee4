package constants

// Language
const (
	EnglishLanguage = "en"
)

// Finding levels
const (
	FindingLevelCritical = "FINDING_LEVEL_CRITICAL"
	FindingLevelHigh     = "FINDING_LEVEL_HIGH"
	FindingLevelMedium   = "FINDING_LEVEL_MEDIUM"
	FindingLevelLow      = "FINDING_LEVEL_LOW"
)

// Finding categories
const (
	FindingCategoryCICD          = "FINDING_CATEGORY_CICD"
	FindingCategoryMalware       = "FINDING_CATEGORY_MALWARE"
	FindingCategoryLicenseRisk   = "FINDING_CATEGORY_LICENSE_RISK"
	FindingCategoryOperational   = "FINDING_CATEGORY_OPERATIONAL"
	FindingCategorySCPM          = "FINDING_CATEGORY_SCPM"
	FindingCategorySecrets       = "FINDING_CATEGORY_SECRETS"
	FindingCategorySecurity      = "FINDING_CATEGORY_SECURITY"
	FindingCategorySupplyChain   = "FINDING_CATEGORY_SUPPLY_CHAIN"
	FindingCategoryVulnerability = "FINDING_CATEGORY_VULNERABILITY"
)

// Catalog entity annotations
const (
	EndorNamespaceAnnotation    = "endorlabs.com/namespace"
	EndorProjectUUIDAnnotation  = "endorlabs.com/project-uuid"
	SourceLocationAnnotation    = "backstage.io/source-location"
	GithubProjectSlugAnnotation = "github.com/project-slug"
)
