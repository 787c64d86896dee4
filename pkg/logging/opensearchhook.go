package logging

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"github.com/opensearch-project/opensearch-go"
	"github.com/sirupsen/logrus"
)

type OpenSearchConfig struct {
	Addresses []string
	Username  string
	Password  string
	Index     string
	Insecure  bool
}

// OpenSearchHook indexes entries into a daily index named <index>-YYYY-MM-DD.
type OpenSearchHook struct {
	client *opensearch.Client
	index  string
	now    func() time.Time
}

func NewOpenSearchClient(config OpenSearchConfig) (*opensearch.Client, error) {
	cfg := opensearch.Config{
		Addresses: config.Addresses,
		Username:  config.Username,
		Password:  config.Password,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: config.Insecure, //nolint:gosec
			},
		},
	}

	return opensearch.NewClient(cfg)
}

func NewOpenSearchHook(client *opensearch.Client, index string) *OpenSearchHook {
	return &OpenSearchHook{
		client: client,
		index:  index,
		now:    time.Now,
	}
}

func (h *OpenSearchHook) Levels() []logrus.Level {
	return []logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
		logrus.WarnLevel,
		logrus.InfoLevel,
	}
}

func (h *OpenSearchHook) getIndexName() string {
	return fmt.Sprintf("%s-%s", h.index, h.now().Format("2006-01-02"))
}

func (h *OpenSearchHook) Fire(entry *logrus.Entry) error {
	data, err := document(entry, "timestamp", entry.Time)
	if err != nil {
		return fmt.Errorf("failed to encode log entry: %w", err)
	}

	ctx := entry.Context
	if ctx == nil {
		ctx = context.Background()
	}

	resp, err := h.client.Index(
		h.getIndexName(),
		bytes.NewReader(data),
		h.client.Index.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("failed to index log entry, status: %s", resp.Status())
	}

	return nil
}
