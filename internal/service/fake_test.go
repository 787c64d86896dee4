package service

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vmindtech/endor/config"
	"github.com/vmindtech/endor/internal/dto/request"
	"github.com/vmindtech/endor/internal/dto/resource"
	"github.com/vmindtech/endor/pkg/constants"
)

const (
	testAPIKey    = "key"
	testAPISecret = "secret"
	testToken     = "tok-1"
)

// fakeEndor serves the subset of the Endor API the services call.
type fakeEndor struct {
	server *httptest.Server

	authCalls     atomic.Int32
	findingsCalls atomic.Int32

	mu             sync.Mutex
	authStatus     int
	token          string
	expiresAt      time.Time
	projects       map[string]resource.Project
	projectStatus  int
	findings       map[string]string
	findingsStatus map[string]int
	findingsQuery  map[string]url.Values
	lastAuthHeader string
	lastNamespace  string
}

func newFakeEndor(t *testing.T) *fakeEndor {
	t.Helper()

	f := &fakeEndor{
		authStatus:     http.StatusOK,
		token:          testToken,
		expiresAt:      time.Now().Add(time.Hour),
		projects:       map[string]resource.Project{},
		findings:       map[string]string{},
		findingsStatus: map[string]int{},
		findingsQuery:  map[string]url.Values{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /"+constants.APIKeyAuthPath, f.handleAuth)
	mux.HandleFunc("GET /v1/namespaces/{namespace}/projects/{uuid}", f.handleProject)
	mux.HandleFunc("GET /v1/namespaces/{namespace}/projects", f.handleListProjects)
	mux.HandleFunc("GET /v1/namespaces/{namespace}/findings", f.handleFindings)

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)

	return f
}

func (f *fakeEndor) config() config.EndorConfig {
	return config.EndorConfig{
		APIURL:    f.server.URL,
		APIKey:    testAPIKey,
		APISecret: testAPISecret,
		Namespace: "default-ns",
		AppURL:    "https://app.endorlabs.com",
	}
}

// setFindings registers the aggregation body returned for a filter.
func (f *fakeEndor) setFindings(filter, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.findings[filter] = body
}

// query returns the findings query received for a filter.
func (f *fakeEndor) query(filter string) url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.findingsQuery[filter]
}

func (f *fakeEndor) setFindingsStatus(filter string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.findingsStatus[filter] = status
}

func (f *fakeEndor) handleAuth(w http.ResponseWriter, r *http.Request) {
	f.authCalls.Add(1)

	f.mu.Lock()
	status, token, expiresAt := f.authStatus, f.token, f.expiresAt
	f.mu.Unlock()

	var req request.APIKeyAuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Key != testAPIKey || req.Secret != testAPISecret {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if status != http.StatusOK {
		w.WriteHeader(status)
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]string{
		"token":          token,
		"expirationTime": expiresAt.Format(time.RFC3339),
	})
}

func (f *fakeEndor) authorized(r *http.Request) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.lastAuthHeader = r.Header.Get("Authorization")
	f.lastNamespace = r.PathValue("namespace")

	return f.lastAuthHeader == "Bearer "+f.token
}

func (f *fakeEndor) handleProject(w http.ResponseWriter, r *http.Request) {
	if !f.authorized(r) {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	f.mu.Lock()
	project, ok := f.projects[r.PathValue("uuid")]
	status := f.projectStatus
	f.mu.Unlock()

	if status != 0 {
		w.WriteHeader(status)
		return
	}
	if !ok {
		http.NotFound(w, r)
		return
	}

	_ = json.NewEncoder(w).Encode(project)
}

func (f *fakeEndor) handleListProjects(w http.ResponseWriter, r *http.Request) {
	if !f.authorized(r) {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	name := strings.TrimPrefix(r.URL.Query().Get(constants.ListFilterParam), "meta.name==")

	var resp resource.ListProjectsResponse
	f.mu.Lock()
	for _, p := range f.projects {
		if p.Meta.Name == name {
			resp.List.Objects = append(resp.List.Objects, p)
		}
	}
	f.mu.Unlock()

	_ = json.NewEncoder(w).Encode(resp)
}

func (f *fakeEndor) handleFindings(w http.ResponseWriter, r *http.Request) {
	f.findingsCalls.Add(1)

	if !f.authorized(r) {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	filter := r.URL.Query().Get(constants.ListFilterParam)

	f.mu.Lock()
	f.findingsQuery[filter] = r.URL.Query()
	body, ok := f.findings[filter]
	status := f.findingsStatus[filter]
	f.mu.Unlock()

	if status != 0 {
		w.WriteHeader(status)
		return
	}
	if !ok {
		body = `{"group_response":{"groups":{}}}`
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, body)
}

func newTestLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
