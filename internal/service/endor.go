package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vmindtech/endor/config"
	"github.com/vmindtech/endor/internal/dto/resource"
	"github.com/vmindtech/endor/pkg/constants"
	"github.com/vmindtech/endor/pkg/utils"
)

type IEndorService interface {
	GetProjectSummary(ctx context.Context, projectUUID, namespace string) (*resource.ProjectSummary, error)
	GetProjectByRepoURL(ctx context.Context, repoURL, namespace string) (*resource.Project, error)
}

type endorService struct {
	logger      *logrus.Logger
	config      config.EndorConfig
	httpClient  *http.Client
	authService IAuthService
}

func NewEndorService(logger *logrus.Logger, cfg config.EndorConfig, client *http.Client, a IAuthService) IEndorService {
	return &endorService{
		logger:      logger,
		config:      cfg,
		httpClient:  client,
		authService: a,
	}
}

func (e *endorService) GetProjectSummary(ctx context.Context, projectUUID, namespace string) (*resource.ProjectSummary, error) {
	if projectUUID == "" {
		return nil, &ConfigError{Field: "project uuid"}
	}

	namespace, err := e.resolveNamespace(namespace)
	if err != nil {
		return nil, err
	}

	token, err := e.authService.GetToken(ctx)
	if err != nil {
		e.logger.Errorf("failed to get endor token, error: %v", err)
		return nil, err
	}

	var (
		project    resource.Project
		total      resource.CountMap
		reachable  resource.CountMap
		categories resource.CountMap
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		path := fmt.Sprintf(constants.ProjectPath, url.PathEscape(namespace), url.PathEscape(projectUUID))
		return e.get(gctx, token, constants.OpGetProject, path, nil, &project)
	})

	g.Go(func() error {
		resp, err := e.getFindingsGroups(gctx, token, namespace, constants.OpTotalFindings, url.Values{
			constants.ListFilterParam:           {fmt.Sprintf(constants.VulnerabilityFilter, projectUUID)},
			constants.ListCountParam:            {"false"},
			constants.ListAggregationPathsParam: {constants.LevelAggregationPath},
		})
		if err != nil {
			return err
		}
		total = CountByLevel(resp)

		return nil
	})

	g.Go(func() error {
		resp, err := e.getFindingsGroups(gctx, token, namespace, constants.OpReachableFindings, url.Values{
			constants.ListFilterParam:           {fmt.Sprintf(constants.ReachableFunctionFilter, projectUUID)},
			constants.ListCountParam:            {"false"},
			constants.ListAggregationPathsParam: {constants.LevelAggregationPath},
		})
		if err != nil {
			return err
		}
		reachable = CountByLevel(resp)

		return nil
	})

	g.Go(func() error {
		resp, err := e.getFindingsGroups(gctx, token, namespace, constants.OpCategoryFindings, url.Values{
			constants.ListFilterParam:           {fmt.Sprintf(constants.MainContextFilter, projectUUID)},
			constants.ListAggregationPathsParam: {constants.CategoryAggregationPath},
		})
		if err != nil {
			return err
		}
		categories = CountByCategory(resp)

		return nil
	})

	if err := g.Wait(); err != nil {
		e.logger.Errorf("failed to fetch summary for project %s, error: %v", projectUUID, err)
		return nil, err
	}

	summaryNamespace := project.TenantMeta.Namespace
	if summaryNamespace == "" {
		summaryNamespace = namespace
	}

	return &resource.ProjectSummary{
		Name:        project.Meta.Name,
		Namespace:   summaryNamespace,
		ProjectUUID: projectUUID,
		Total:       total,
		Reachable:   reachable,
		Categories:  categories,
	}, nil
}

func (e *endorService) GetProjectByRepoURL(ctx context.Context, repoURL, namespace string) (*resource.Project, error) {
	if repoURL == "" {
		return nil, &ConfigError{Field: "repository url"}
	}

	namespace, err := e.resolveNamespace(namespace)
	if err != nil {
		return nil, err
	}

	token, err := e.authService.GetToken(ctx)
	if err != nil {
		e.logger.Errorf("failed to get endor token, error: %v", err)
		return nil, err
	}

	var respDecoder resource.ListProjectsResponse

	path := fmt.Sprintf(constants.ProjectsPath, url.PathEscape(namespace))
	query := url.Values{
		constants.ListFilterParam: {fmt.Sprintf(constants.ProjectByNameFilter, repoURL)},
	}
	if err := e.get(ctx, token, constants.OpGetProjectByRepo, path, query, &respDecoder); err != nil {
		return nil, err
	}

	if len(respDecoder.List.Objects) == 0 {
		e.logger.Errorf("failed to find project for repository %s", repoURL)
		return nil, &UpstreamError{
			Op:         constants.OpGetProjectByRepo,
			StatusCode: http.StatusNotFound,
			Err:        fmt.Errorf("%w for repository: %s", ErrProjectNotFound, repoURL),
		}
	}

	return &respDecoder.List.Objects[0], nil
}

func (e *endorService) resolveNamespace(namespace string) (string, error) {
	if namespace != "" {
		return namespace, nil
	}
	if e.config.Namespace != "" {
		return e.config.Namespace, nil
	}

	return "", &ConfigError{Field: "namespace"}
}

func (e *endorService) getFindingsGroups(ctx context.Context, token, namespace, op string, query url.Values) (*resource.FindingsGroupResponse, error) {
	var respDecoder resource.FindingsGroupResponse

	path := fmt.Sprintf(constants.FindingsPath, url.PathEscape(namespace))
	if err := e.get(ctx, token, op, path, query, &respDecoder); err != nil {
		return nil, err
	}

	return &respDecoder, nil
}

// get issues an authenticated GET and decodes a 2xx body into out.
func (e *endorService) get(ctx context.Context, token, op, path string, query url.Values, out interface{}) error {
	endpoint := fmt.Sprintf("%s/%s", e.config.APIURL, path)
	if len(query) > 0 {
		endpoint = fmt.Sprintf("%s?%s", endpoint, query.Encode())
	}

	r, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		e.logger.Errorf("failed to create request, error: %v", err)
		return &UpstreamError{Op: op, Err: err}
	}
	r.Header.Add(utils.AuthorizationHeaderKey, fmt.Sprintf("%s %s", utils.BearerAuthType, token))
	r.Header.Add("Accept", "application/json")

	resp, err := e.httpClient.Do(r)
	if err != nil {
		e.logger.Errorf("failed to send request, error: %v", err)
		return &UpstreamError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		e.logger.Errorf("failed to %s, status code: %v, error msg: %v", op, resp.StatusCode, resp.Status)
		return &UpstreamError{Op: op, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		e.logger.Errorf("failed to decode response, error: %v", err)
		return &UpstreamError{Op: op, StatusCode: resp.StatusCode, Status: resp.Status, Err: err}
	}

	return nil
}
