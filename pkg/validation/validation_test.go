package validation_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/vmindtech/endor/internal/dto/request"
	"github.com/vmindtech/endor/pkg/validation"
)

func TestValidateSummaryRequest(t *testing.T) {
	v := validation.InitValidator()

	errs := v.Validate(request.SummaryRequest{Namespace: "acme"})
	gt.Equal(t, len(errs), 2)
	gt.S(t, errs["projectUUID"]).Contains("projectUUID")
	gt.S(t, errs["repoUrl"]).Contains("repoUrl")

	gt.Equal(t, len(v.Validate(request.SummaryRequest{ProjectUUID: "P1"})), 0)
	gt.Equal(t, len(v.Validate(request.SummaryRequest{RepoURL: "https://github.com/acme/app.git"})), 0)
}
