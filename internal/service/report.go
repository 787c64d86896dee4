package service

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/vmindtech/endor/internal/dto/resource"
	"github.com/vmindtech/endor/pkg/constants"
)

// Findings sections of the Endor web app.
const (
	dependencySection = "dependency"
	repositorySection = "repository"
	secretsSection    = "secrets"
)

const (
	dependencyBaseFilter = "meta.parent_kind==PackageVersion and spec.ecosystem!=ECOSYSTEM_GITHUB_ACTION and spec.finding_tags not contains [FINDING_TAGS_SELF] and spec.project_uuid==%s"
	repositoryBaseFilter = "meta.parent_kind in [Repository,RepositoryVersion] and spec.finding_categories not contains [FINDING_CATEGORY_SECRETS] and spec.project_uuid==%s"
	secretsBaseFilter    = "spec.finding_categories contains [FINDING_CATEGORY_SECRETS] and spec.project_uuid==%s"

	categoryFilterSuffix  = " and spec.finding_categories contains [%s]"
	levelFilterSuffix     = " and spec.level in [%s] and spec.finding_categories contains [FINDING_CATEGORY_VULNERABILITY]"
	reachableFilterSuffix = " and spec.finding_tags contains [FINDING_TAGS_REACHABLE_FUNCTION]"

	countPlaceholder = "{count}"
)

type severity struct {
	level string
	label string
}

var severities = []severity{
	{level: constants.FindingLevelCritical, label: "Critical"},
	{level: constants.FindingLevelHigh, label: "High"},
	{level: constants.FindingLevelMedium, label: "Medium"},
	{level: constants.FindingLevelLow, label: "Low"},
}

type categoryCheck struct {
	title            string
	category         string
	section          string
	warningThreshold int64
	errorThreshold   int64
	explanation      string
}

type categoryGroup struct {
	title  string
	checks []categoryCheck
}

var categoryGroups = []categoryGroup{
	{
		title: "Secure Repositories and Pipelines",
		checks: []categoryCheck{
			{
				title:            "Source Code Posture Management",
				category:         constants.FindingCategorySCPM,
				section:          repositorySection,
				warningThreshold: 1,
				errorThreshold:   2,
				explanation:      "You have {count} findings for Source Code Posture Management. Strong information security practices are necessary to secure your open source code used in your development and delivery infrastructure.",
			},
			{
				title:            "Leaked Secrets",
				category:         constants.FindingCategorySecrets,
				section:          secretsSection,
				warningThreshold: 1,
				errorThreshold:   1,
				explanation:      "You have {count} potential secrets stored within your project's source code. Secrets are access credentials that provide access to key resources and services, such as passwords, API keys, and personal access tokens.",
			},
			{
				title:            "CI/CD Tooling",
				category:         constants.FindingCategoryCICD,
				section:          repositorySection,
				warningThreshold: 1,
				errorThreshold:   1,
				explanation:      "You have {count} findings for CI/CD policies which include unauthorized use of tools or you are missing a required tool (e.g., no SAST in place).",
			},
		},
	},
	{
		title: "Secure Open Source Code",
		checks: []categoryCheck{
			{
				title:            "Malware",
				category:         constants.FindingCategoryMalware,
				section:          dependencySection,
				warningThreshold: 0,
				errorThreshold:   1,
				explanation:      "You have {count} findings for malicious dependencies.",
			},
			{
				title:            "License Risk",
				category:         constants.FindingCategoryLicenseRisk,
				section:          dependencySection,
				warningThreshold: 1,
				errorThreshold:   3,
				explanation:      "You have {count} dependencies which may introduce license risk such as missing licenses, conflicting licenses, or licenses which violate your policies.",
			},
			{
				title:            "Operational Risk",
				category:         constants.FindingCategoryOperational,
				section:          dependencySection,
				warningThreshold: 1,
				errorThreshold:   5,
				explanation:      "You have {count} findings for operational risk including Outdated Dependencies, Unmaintained Dependencies, Unpinned Direct Dependencies, Unused Direct Dependencies, License Risks and more.",
			},
			{
				title:            "Security Risk",
				category:         constants.FindingCategorySecurity,
				section:          dependencySection,
				warningThreshold: 1,
				errorThreshold:   5,
				explanation:      "You have {count} findings for security risk including Vulnerabilities, Missing Source Code, Leaked Secrets and more.",
			},
			{
				title:            "Supply Chain Risk",
				category:         constants.FindingCategorySupplyChain,
				section:          dependencySection,
				warningThreshold: 1,
				errorThreshold:   5,
				explanation:      "You have {count} findings for supply chain risk including Typosquatting, Malicious Packages and more.",
			},
		},
	},
}

// BuildReport turns a summary into severity rows and threshold checks, each
// linking to the matching findings view of the Endor web app at appURL.
func BuildReport(summary *resource.ProjectSummary, appURL string) resource.SummaryReport {
	report := resource.SummaryReport{
		Name:        summary.Name,
		Namespace:   summary.Namespace,
		ProjectUUID: summary.ProjectUUID,
	}

	dependencyFilter := fmt.Sprintf(dependencyBaseFilter, summary.ProjectUUID)
	for _, s := range severities {
		filter := dependencyFilter + fmt.Sprintf(levelFilterSuffix, s.level)
		report.Severities = append(report.Severities, resource.SeverityRow{
			Level:         s.level,
			Label:         s.label,
			Total:         summary.Total.Get(s.level),
			Reachable:     summary.Reachable.Get(s.level),
			TotalLink:     FindingsURL(summary.Namespace, dependencySection, filter, appURL),
			ReachableLink: FindingsURL(summary.Namespace, dependencySection, filter+reachableFilterSuffix, appURL),
		})
	}

	for _, g := range categoryGroups {
		group := resource.CategoryGroup{Title: g.title}
		for _, c := range g.checks {
			count := summary.Categories.Get(c.category)
			group.Checks = append(group.Checks, resource.CategoryCheck{
				Title:            c.title,
				Category:         c.category,
				Count:            count,
				Status:           CheckStatus(count, c.warningThreshold, c.errorThreshold),
				WarningThreshold: c.warningThreshold,
				ErrorThreshold:   c.errorThreshold,
				Explanation:      strings.ReplaceAll(c.explanation, countPlaceholder, strconv.FormatInt(count, 10)),
				Link:             FindingsURL(summary.Namespace, c.section, checkFilter(c, summary.ProjectUUID), appURL),
			})
		}
		report.Groups = append(report.Groups, group)
	}

	return report
}

func CheckStatus(count, warningThreshold, errorThreshold int64) resource.CheckStatus {
	switch {
	case count > errorThreshold:
		return resource.CheckStatusError
	case count > warningThreshold:
		return resource.CheckStatusWarning
	default:
		return resource.CheckStatusOK
	}
}

// FindingsURL links to /t/<namespace>/findings/<section>/ of the web app with
// filter as the query.
func FindingsURL(namespace, section, filter, baseURL string) string {
	ref := &url.URL{
		Path:     fmt.Sprintf("/t/%s/findings/%s/", namespace, section),
		RawPath:  fmt.Sprintf("/t/%s/findings/%s/", url.PathEscape(namespace), section),
		RawQuery: "filter=" + url.QueryEscape(filter),
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return ref.String()
	}

	return base.ResolveReference(ref).String()
}

func checkFilter(c categoryCheck, projectUUID string) string {
	switch c.section {
	case secretsSection:
		return fmt.Sprintf(secretsBaseFilter, projectUUID)
	case repositorySection:
		return fmt.Sprintf(repositoryBaseFilter, projectUUID) + fmt.Sprintf(categoryFilterSuffix, c.category)
	default:
		return fmt.Sprintf(dependencyBaseFilter, projectUUID) + fmt.Sprintf(categoryFilterSuffix, c.category)
	}
}
