package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/vmindtech/endor/internal/dto/resource"
	"github.com/vmindtech/endor/pkg/constants"
)

const (
	highGroup          = `{"group_response":{"groups":{"[{\"key\":\"spec.level\",\"value\":[\"FINDING_LEVEL_HIGH\"]}]":{"aggregation_count":{"count":3}}}}}`
	categoryGroupsBody = `{"group_response":{"groups":{
		"[{\"key\":\"spec.finding_categories\",\"value\":[\"FINDING_CATEGORY_VULNERABILITY\",\"FINDING_CATEGORY_SECURITY\"]}]":{"aggregation_count":{"count":3}},
		"[{\"key\":\"spec.finding_categories\",\"value\":[\"FINDING_CATEGORY_SECRETS\"]}]":{"aggregation_count":{"count":2}}
	}}}`
)

func newTestEndorService(f *fakeEndor) IEndorService {
	cfg := f.config()
	a := NewAuthService(newTestLogger(), cfg, http.DefaultClient)

	return NewEndorService(newTestLogger(), cfg, http.DefaultClient, a)
}

func addProject(f *fakeEndor, uuid, name, namespace string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.projects[uuid] = resource.Project{
		UUID:       uuid,
		TenantMeta: resource.TenantMeta{Namespace: namespace},
		Meta:       resource.Meta{Name: name},
	}
}

func TestGetProjectSummary(t *testing.T) {
	f := newFakeEndor(t)
	addProject(f, "P1", "https://github.com/acme/app.git", "N1")
	f.setFindings(fmt.Sprintf(constants.VulnerabilityFilter, "P1"), highGroup)
	f.setFindings(fmt.Sprintf(constants.MainContextFilter, "P1"), categoryGroupsBody)

	summary, err := newTestEndorService(f).GetProjectSummary(context.Background(), "P1", "N1")
	gt.NoError(t, err).Required()

	gt.Equal(t, summary.Name, "https://github.com/acme/app.git")
	gt.Equal(t, summary.Namespace, "N1")
	gt.Equal(t, summary.ProjectUUID, "P1")
	gt.Equal(t, summary.Total, resource.CountMap{constants.FindingLevelHigh: {Count: 3}})
	gt.Equal(t, len(summary.Reachable), 0)
	gt.Equal(t, summary.Categories, resource.CountMap{
		constants.FindingCategoryVulnerability: {Count: 3},
		constants.FindingCategorySecurity:      {Count: 3},
		constants.FindingCategorySecrets:       {Count: 2},
	})
	gt.Equal(t, summary.Categories.Get(constants.FindingCategoryMalware), int64(0))

	gt.Equal(t, f.authCalls.Load(), int32(1))
	gt.Equal(t, f.findingsCalls.Load(), int32(3))
	gt.Equal(t, f.lastAuthHeader, "Bearer "+testToken)
	gt.Equal(t, f.lastNamespace, "N1")
}

func TestGetProjectSummaryListParameters(t *testing.T) {
	f := newFakeEndor(t)
	addProject(f, "P1", "app", "N1")

	_, err := newTestEndorService(f).GetProjectSummary(context.Background(), "P1", "N1")
	gt.NoError(t, err).Required()

	testCases := map[string]struct {
		filter          string
		aggregationPath string
		count           string
	}{
		"total":      {filter: constants.VulnerabilityFilter, aggregationPath: constants.LevelAggregationPath, count: "false"},
		"reachable":  {filter: constants.ReachableFunctionFilter, aggregationPath: constants.LevelAggregationPath, count: "false"},
		"categories": {filter: constants.MainContextFilter, aggregationPath: constants.CategoryAggregationPath},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			q := f.query(fmt.Sprintf(tc.filter, "P1"))
			gt.V(t, q).NotNil()
			gt.Equal(t, q[constants.ListAggregationPathsParam], []string{tc.aggregationPath})
			gt.Equal(t, q.Get(constants.ListCountParam), tc.count)
		})
	}
}

func TestGetProjectSummaryReusesToken(t *testing.T) {
	f := newFakeEndor(t)
	addProject(f, "P1", "app", "N1")
	svc := newTestEndorService(f)

	for i := 0; i < 3; i++ {
		_, err := svc.GetProjectSummary(context.Background(), "P1", "N1")
		gt.NoError(t, err).Required()
	}

	gt.Equal(t, f.authCalls.Load(), int32(1))
}

func TestGetProjectSummaryUsesConfiguredNamespace(t *testing.T) {
	f := newFakeEndor(t)
	addProject(f, "P1", "app", "")

	summary, err := newTestEndorService(f).GetProjectSummary(context.Background(), "P1", "")
	gt.NoError(t, err).Required()
	gt.Equal(t, f.lastNamespace, "default-ns")
	gt.Equal(t, summary.Namespace, "default-ns")
}

func TestGetProjectSummaryConfigErrors(t *testing.T) {
	f := newFakeEndor(t)
	cfg := f.config()
	cfg.Namespace = ""
	svc := NewEndorService(newTestLogger(), cfg, http.DefaultClient, NewAuthService(newTestLogger(), cfg, http.DefaultClient))

	testCases := map[string]struct {
		projectUUID string
		namespace   string
		field       string
	}{
		"missing project uuid": {projectUUID: "", namespace: "N1", field: "project uuid"},
		"missing namespace":    {projectUUID: "P1", namespace: "", field: "namespace"},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.GetProjectSummary(context.Background(), tc.projectUUID, tc.namespace)

			var configErr *ConfigError
			gt.True(t, errors.As(err, &configErr))
			gt.Equal(t, configErr.Field, tc.field)
		})
	}

	gt.Equal(t, f.authCalls.Load(), int32(0))
}

func TestGetProjectSummaryUpstreamError(t *testing.T) {
	testCases := map[string]struct {
		filter string
		op     string
	}{
		"total":      {filter: constants.VulnerabilityFilter, op: constants.OpTotalFindings},
		"reachable":  {filter: constants.ReachableFunctionFilter, op: constants.OpReachableFindings},
		"categories": {filter: constants.MainContextFilter, op: constants.OpCategoryFindings},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			f := newFakeEndor(t)
			addProject(f, "P1", "app", "N1")
			f.setFindingsStatus(fmt.Sprintf(tc.filter, "P1"), http.StatusBadGateway)

			summary, err := newTestEndorService(f).GetProjectSummary(context.Background(), "P1", "N1")
			gt.Nil(t, summary)

			var upstreamErr *UpstreamError
			gt.True(t, errors.As(err, &upstreamErr))
			gt.Equal(t, upstreamErr.Op, tc.op)
			gt.Equal(t, upstreamErr.StatusCode, http.StatusBadGateway)
			gt.False(t, upstreamErr.NotFound())
		})
	}
}

func TestGetProjectSummaryProjectNotFound(t *testing.T) {
	f := newFakeEndor(t)

	_, err := newTestEndorService(f).GetProjectSummary(context.Background(), "missing", "N1")

	var upstreamErr *UpstreamError
	gt.True(t, errors.As(err, &upstreamErr))
	gt.Equal(t, upstreamErr.Op, constants.OpGetProject)
	gt.True(t, upstreamErr.NotFound())
}

func TestGetProjectSummaryAuthError(t *testing.T) {
	f := newFakeEndor(t)
	f.authStatus = http.StatusForbidden

	_, err := newTestEndorService(f).GetProjectSummary(context.Background(), "P1", "N1")

	var authErr *AuthError
	gt.True(t, errors.As(err, &authErr))
	gt.Equal(t, f.findingsCalls.Load(), int32(0))
}

func TestGetProjectByRepoURL(t *testing.T) {
	f := newFakeEndor(t)
	addProject(f, "P1", "https://github.com/acme/app.git", "N1")
	addProject(f, "P2", "https://github.com/acme/other.git", "N1")

	project, err := newTestEndorService(f).GetProjectByRepoURL(context.Background(), "https://github.com/acme/app.git", "N1")
	gt.NoError(t, err).Required()
	gt.Equal(t, project.UUID, "P1")
}

func TestGetProjectByRepoURLNotFound(t *testing.T) {
	f := newFakeEndor(t)

	_, err := newTestEndorService(f).GetProjectByRepoURL(context.Background(), "https://github.com/acme/none.git", "N1")

	var upstreamErr *UpstreamError
	gt.True(t, errors.As(err, &upstreamErr))
	gt.True(t, upstreamErr.NotFound())
	gt.True(t, errors.Is(err, ErrProjectNotFound))
	gt.S(t, err.Error()).Contains("https://github.com/acme/none.git")
}

func TestGetProjectByRepoURLRequiresURL(t *testing.T) {
	f := newFakeEndor(t)

	_, err := newTestEndorService(f).GetProjectByRepoURL(context.Background(), "", "N1")

	var configErr *ConfigError
	gt.True(t, errors.As(err, &configErr))
}
