package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/vmindtech/endor/internal/dto/request"
	"github.com/vmindtech/endor/internal/service"
	"github.com/vmindtech/endor/pkg/client"
)

const defaultBackendURL = "http://localhost:8080"

type backendConfig struct {
	URL     string
	Timeout time.Duration
}

func (b *backendConfig) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "backend-url",
			Usage:       "Base URL of the summary backend",
			Value:       defaultBackendURL,
			Sources:     cli.EnvVars("ENDOR_BACKEND_URL"),
			Destination: &b.URL,
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "Timeout of a backend call",
			Value:       30 * time.Second,
			Destination: &b.Timeout,
		},
	}
}

func (b *backendConfig) client() *client.Client {
	return client.New(b.URL, &http.Client{Timeout: b.Timeout})
}

type reportConfig struct {
	ProjectUUID string
	RepoURL     string
	Namespace   string
	CatalogInfo string
}

func (r *reportConfig) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "project-uuid",
			Usage:       "Endor project UUID",
			Destination: &r.ProjectUUID,
		},
		&cli.StringFlag{
			Name:        "repo-url",
			Usage:       "Repository URL used when no project UUID is given",
			Destination: &r.RepoURL,
		},
		&cli.StringFlag{
			Name:        "namespace",
			Usage:       "Endor namespace, defaults to the backend's namespace",
			Sources:     cli.EnvVars("ENDOR_NAMESPACE"),
			Destination: &r.Namespace,
		},
		&cli.StringFlag{
			Name:        "catalog-info",
			Usage:       "Path to a catalog-info.yaml carrying endorlabs.com annotations",
			Destination: &r.CatalogInfo,
		},
	}
}

// resolve merges the catalog entity annotations under the explicit flags.
func (r *reportConfig) resolve() (request.SummaryRequest, error) {
	req := request.SummaryRequest{
		ProjectUUID: r.ProjectUUID,
		RepoURL:     r.RepoURL,
		Namespace:   r.Namespace,
	}

	if r.CatalogInfo == "" {
		return req, nil
	}

	f, err := os.Open(r.CatalogInfo)
	if err != nil {
		return req, fmt.Errorf("failed to open catalog info: %w", err)
	}
	defer f.Close()

	entity, err := service.ParseCatalogEntity(f)
	if err != nil {
		return req, err
	}

	if req.ProjectUUID == "" && req.RepoURL == "" {
		req.ProjectUUID = entity.ProjectUUID
		req.RepoURL = entity.RepoURL
	}
	if req.Namespace == "" {
		req.Namespace = entity.Namespace
	}

	return req, nil
}

func joinFlags(flagSets ...[]cli.Flag) []cli.Flag {
	var flags []cli.Flag
	for _, set := range flagSets {
		flags = append(flags, set...)
	}

	return flags
}

func cmdReport(w io.Writer) *cli.Command {
	var (
		backendCfg backendConfig
		reportCfg  reportConfig
	)

	return &cli.Command{
		Name:  "report",
		Usage: "Render the findings summary of a project",
		Flags: joinFlags(backendCfg.Flags(), reportCfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			req, err := reportCfg.resolve()
			if err != nil {
				return err
			}

			report, err := backendCfg.client().GetReport(ctx, req.ProjectUUID, req.RepoURL, req.Namespace)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(w, RenderReport(report))
			return err
		},
	}
}

func cmdHealth(w io.Writer) *cli.Command {
	var backendCfg backendConfig

	return &cli.Command{
		Name:  "health",
		Usage: "Check the backend and show the Endor API it talks to",
		Flags: backendCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			health, err := backendCfg.client().Health(ctx)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(w, "%s %s\n", health.Status, health.APIURL)
			return err
		},
	}
}
