package service

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vmindtech/endor/internal/dto/request"
	"github.com/vmindtech/endor/pkg/constants"
)

const (
	sourceLocationURLPrefix = "url:"
	githubURLFormat         = "https://github.com/%s.git"
)

type catalogEntity struct {
	APIVersion string         `yaml:"apiVersion"`
	Kind       string         `yaml:"kind"`
	Metadata   entityMetadata `yaml:"metadata"`
}

type entityMetadata struct {
	Name        string            `yaml:"name"`
	Annotations map[string]string `yaml:"annotations"`
}

// ParseCatalogEntity reads a catalog-info document and resolves the summary
// request from its Endor annotations. The repository URL is only derived
// when no project UUID is annotated.
func ParseCatalogEntity(r io.Reader) (request.SummaryRequest, error) {
	var entity catalogEntity
	if err := yaml.NewDecoder(r).Decode(&entity); err != nil {
		return request.SummaryRequest{}, fmt.Errorf("failed to parse catalog entity: %w", err)
	}

	return ResolveAnnotations(entity.Metadata.Annotations), nil
}

func ResolveAnnotations(annotations map[string]string) request.SummaryRequest {
	req := request.SummaryRequest{
		Namespace:   annotations[constants.EndorNamespaceAnnotation],
		ProjectUUID: annotations[constants.EndorProjectUUIDAnnotation],
	}

	if req.ProjectUUID != "" {
		return req
	}

	if location := annotations[constants.SourceLocationAnnotation]; location != "" {
		req.RepoURL = strings.TrimPrefix(location, sourceLocationURLPrefix)
	} else if slug := annotations[constants.GithubProjectSlugAnnotation]; slug != "" {
		req.RepoURL = fmt.Sprintf(githubURLFormat, slug)
	}

	return req
}
