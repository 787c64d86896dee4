package handler

import (
	"bytes"
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/vmindtech/endor/config"
	"github.com/vmindtech/endor/internal/dto/request"
	"github.com/vmindtech/endor/internal/dto/resource"
	"github.com/vmindtech/endor/internal/service"
	"github.com/vmindtech/endor/pkg/constants"
	"github.com/vmindtech/endor/pkg/response"
	"github.com/vmindtech/endor/pkg/utils"
)

type ISummaryHandler interface {
	Summary(c *fiber.Ctx) error
	Report(c *fiber.Ctx) error
}

type summaryHandler struct {
	logger      *logrus.Logger
	appService  service.IAppService
	endorConfig config.EndorConfig
}

// repoNotFoundError marks a failed repository URL lookup.
type repoNotFoundError struct {
	err error
}

func (e *repoNotFoundError) Error() string {
	return e.err.Error()
}

func (e *repoNotFoundError) Unwrap() error {
	return e.err
}

func NewSummaryHandler(l *logrus.Logger, as service.IAppService, cfg config.EndorConfig) ISummaryHandler {
	return &summaryHandler{
		logger:      l,
		appService:  as,
		endorConfig: cfg,
	}
}

func (s *summaryHandler) Summary(c *fiber.Ctx) error {
	req, err := parseSummaryRequest(c)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(response.NewBodyParserErrorResponse())
	}

	if errs := utils.ValidateWithContext(c.UserContext(), req); errs != nil {
		return s.validationError(c, errs)
	}

	summary, err := s.fetchSummary(c, req)
	if err != nil {
		return s.summaryError(c, err)
	}

	return c.JSON(summary)
}

func (s *summaryHandler) Report(c *fiber.Ctx) error {
	req, err := parseSummaryRequest(c)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(response.NewBodyParserErrorResponse())
	}

	if errs := utils.ValidateWithContext(c.UserContext(), req); errs != nil {
		return s.validationError(c, errs)
	}

	summary, err := s.fetchSummary(c, req)
	if err != nil {
		return s.summaryError(c, err)
	}

	return c.JSON(service.BuildReport(summary, s.endorConfig.AppURL))
}

// parseSummaryRequest reads the JSON body. A missing body or content type is
// an empty request, left for validation to reject.
func parseSummaryRequest(c *fiber.Ctx) (request.SummaryRequest, error) {
	var req request.SummaryRequest
	if len(bytes.TrimSpace(c.Body())) == 0 || c.Get(fiber.HeaderContentType) == "" {
		return req, nil
	}

	err := c.BodyParser(&req)

	return req, err
}

// fetchSummary resolves the project UUID from the repository URL when only
// the latter is given, then fetches the summary within the request timeout.
func (s *summaryHandler) fetchSummary(c *fiber.Ctx, req request.SummaryRequest) (*resource.ProjectSummary, error) {
	ctx := c.UserContext()
	if s.endorConfig.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.endorConfig.RequestTimeout)
		defer cancel()
	}

	projectUUID := req.ProjectUUID
	if projectUUID == "" {
		s.logger.Infof("getting summary for repo %s", req.RepoURL)

		project, err := s.appService.Endor().GetProjectByRepoURL(ctx, req.RepoURL, req.Namespace)
		if err != nil {
			var configErr *service.ConfigError
			if errors.As(err, &configErr) {
				return nil, err
			}

			return nil, &repoNotFoundError{err: err}
		}
		projectUUID = project.UUID
	} else {
		s.logger.Infof("getting summary for project %s", projectUUID)
	}

	return s.appService.Endor().GetProjectSummary(ctx, projectUUID, req.Namespace)
}

func (s *summaryHandler) validationError(c *fiber.Ctx, errs map[string]string) error {
	c.Locals(utils.ErrorTypeKey, constants.ErrTypeMissingAnnotation)

	return c.Status(fiber.StatusBadRequest).JSON(response.NewSummaryValidationErrorResponse(c.UserContext(), errs))
}

func (s *summaryHandler) summaryError(c *fiber.Ctx, err error) error {
	status, errorType := classifyError(err)
	if status == fiber.StatusInternalServerError {
		s.logger.Errorf("API error: %v", err)
	}

	c.Locals(utils.ErrorTypeKey, errorType)

	var cause error
	if errorType == constants.ErrTypeAPIError {
		cause = err
	}

	return c.Status(status).JSON(response.NewSummaryErrorResponse(c.UserContext(), errorType, cause))
}

func classifyError(err error) (int, string) {
	var (
		configErr   *service.ConfigError
		repoErr     *repoNotFoundError
		upstreamErr *service.UpstreamError
	)

	switch {
	case errors.As(err, &configErr):
		return fiber.StatusBadRequest, constants.ErrTypeMissingAnnotation
	case errors.As(err, &repoErr):
		return fiber.StatusNotFound, constants.ErrTypeRepoNotFound
	case errors.As(err, &upstreamErr) && upstreamErr.NotFound():
		return fiber.StatusNotFound, constants.ErrTypeProjectNotFound
	default:
		return fiber.StatusInternalServerError, constants.ErrTypeAPIError
	}
}
