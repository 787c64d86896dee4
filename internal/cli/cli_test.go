package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/vmindtech/endor/internal/cli"
	"github.com/vmindtech/endor/internal/dto/request"
	"github.com/vmindtech/endor/internal/dto/resource"
	"github.com/vmindtech/endor/internal/service"
	"github.com/vmindtech/endor/pkg/constants"
)

func newBackend(t *testing.T, got *request.SummaryRequest) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.NoError(t, json.NewDecoder(r.Body).Decode(got))

		report := service.BuildReport(&resource.ProjectSummary{
			Name:        "app",
			Namespace:   "acme",
			ProjectUUID: "P1",
			Total:       resource.CountMap{constants.FindingLevelHigh: {Count: 3}},
			Categories:  resource.CountMap{constants.FindingCategorySecrets: {Count: 2}},
		}, "https://app.endorlabs.com")

		_ = json.NewEncoder(w).Encode(report)
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestReportCommand(t *testing.T) {
	var got request.SummaryRequest
	srv := newBackend(t, &got)

	var out bytes.Buffer
	err := cli.Run(context.Background(), []string{"endorctl", "report", "--backend-url", srv.URL, "--project-uuid", "P1", "--namespace", "acme"}, &out)
	gt.NoError(t, err).Required()

	gt.Equal(t, got, request.SummaryRequest{ProjectUUID: "P1", Namespace: "acme"})
	gt.S(t, out.String()).Contains("Endor Labs findings for app")
	gt.S(t, out.String()).Contains("Leaked Secrets (2)")
	gt.S(t, out.String()).Contains("Nothing to report")
	gt.S(t, out.String()).Contains("https://app.endorlabs.com/t/acme/findings/secrets/")
}

func TestReportCommandReadsCatalogInfo(t *testing.T) {
	var got request.SummaryRequest
	srv := newBackend(t, &got)

	file := filepath.Join(t.TempDir(), "catalog-info.yaml")
	gt.NoError(t, os.WriteFile(file, []byte(`apiVersion: backstage.io/v1alpha1
kind: Component
metadata:
  name: app
  annotations:
    endorlabs.com/namespace: acme
    github.com/project-slug: acme/app
`), 0o600)).Required()

	var out bytes.Buffer
	err := cli.Run(context.Background(), []string{"endorctl", "report", "--backend-url", srv.URL, "--catalog-info", file}, &out)
	gt.NoError(t, err).Required()
	gt.Equal(t, got, request.SummaryRequest{RepoURL: "https://github.com/acme/app.git", Namespace: "acme"})
}

func TestReportCommandWithoutIdentifiers(t *testing.T) {
	var out bytes.Buffer
	err := cli.Run(context.Background(), []string{"endorctl", "report", "--backend-url", "http://127.0.0.1:0"}, &out)
	gt.Error(t, err)
	gt.S(t, err.Error()).Contains(constants.ErrTypeMissingAnnotation)
}

func TestRenderReportShowsFindingsBelowThreshold(t *testing.T) {
	report := service.BuildReport(&resource.ProjectSummary{
		Name:        "app",
		Namespace:   "acme",
		ProjectUUID: "P1",
		Categories:  resource.CountMap{constants.FindingCategorySCPM: {Count: 1}},
	}, "https://app.endorlabs.com")

	scpm := report.Groups[0].Checks[0]
	gt.Equal(t, scpm.Category, constants.FindingCategorySCPM)
	gt.Equal(t, scpm.Status, resource.CheckStatusOK)

	out := cli.RenderReport(&report)
	gt.S(t, out).Contains("You have 1 findings for Source Code Posture Management.")
	gt.S(t, out).Contains(scpm.Link)
}

func TestRenderReport(t *testing.T) {
	report := service.BuildReport(&resource.ProjectSummary{
		Name:        "app",
		Namespace:   "acme",
		ProjectUUID: "P1",
		Categories:  resource.CountMap{constants.FindingCategoryMalware: {Count: 4}},
	}, "https://app.endorlabs.com")

	out := cli.RenderReport(&report)
	gt.S(t, out).Contains("Secure Open Source Code")
	gt.S(t, out).Contains("ERROR")
	gt.S(t, out).Contains("You have 4 findings for malicious dependencies.")
	gt.S(t, out).Contains("Critical")
}
