package repositoryImp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"studyplan/entities"
	"studyplan/pkg/planner/repository"
)

// remoteHTTP talks to the hosted document store over its REST surface.
// All calls carry a bounded timeout; callers absorb failures into the
// local-fallback path.
type remoteHTTP struct {
	endpoint string
	key      string
	httpc    *http.Client
}

func NewRemoteHTTP(endpoint, key string) repository.RemoteStore {
	return &remoteHTTP{
		endpoint: strings.TrimRight(endpoint, "/"),
		key:      key,
		httpc:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *remoteHTTP) do(method, path string, body, out any) error {
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, r.endpoint+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if r.key != "" {
		req.Header.Set("Authorization", "Bearer "+r.key)
	}

	resp, err := r.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return repository.ErrPermissionDenied
	case http.StatusNotFound:
		return repository.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("remote store: %s %s: %s", method, path, resp.Status)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("remote store: decode %s: %w", path, err)
		}
	}
	return nil
}

func (r *remoteHTTP) Create(ownerID string, p *entities.Planner) (string, error) {
	payload := struct {
		OwnerID string            `json:"ownerId"`
		Planner *entities.Planner `json:"planner"`
	}{ownerID, p}
	var out struct {
		ID string `json:"id"`
	}
	if err := r.do("POST", "/v1/planners", payload, &out); err != nil {
		return "", err
	}
	if out.ID == "" {
		return "", fmt.Errorf("remote store: create returned no id")
	}
	return out.ID, nil
}

func (r *remoteHTTP) ListByOwner(ownerID string) ([]entities.Planner, error) {
	var out []entities.Planner
	if err := r.do("GET", "/v1/planners?owner="+url.QueryEscape(ownerID), nil, &out); err != nil {
		return nil, err
	}
	planners := make([]entities.Planner, 0, len(out))
	for _, p := range out {
		// drop records the store returned half-written
		if p.ID == "" || p.Title == "" {
			continue
		}
		p.SyncState = entities.SyncSynced
		p.Sanitize()
		planners = append(planners, p)
	}
	return planners, nil
}

func (r *remoteHTTP) Update(id string, p *entities.Planner) error {
	return r.do("PUT", "/v1/planners/"+url.PathEscape(id), p, nil)
}

func (r *remoteHTTP) Delete(id string) error {
	return r.do("DELETE", "/v1/planners/"+url.PathEscape(id), nil, nil)
}

func (r *remoteHTTP) GetByID(id string) (*entities.Planner, error) {
	var p entities.Planner
	if err := r.do("GET", "/v1/planners/"+url.PathEscape(id), nil, &p); err != nil {
		return nil, err
	}
	p.SyncState = entities.SyncSynced
	p.Sanitize()
	return &p, nil
}

// remoteDisabled stands in when no remote endpoint is configured; every
// call fails so the service stays on the local cache.
type remoteDisabled struct{}

func NewRemoteDisabled() repository.RemoteStore { return &remoteDisabled{} }

func (remoteDisabled) Create(string, *entities.Planner) (string, error) {
	return "", repository.ErrRemoteDisabled
}
func (remoteDisabled) ListByOwner(string) ([]entities.Planner, error) {
	return nil, repository.ErrRemoteDisabled
}
func (remoteDisabled) Update(string, *entities.Planner) error { return repository.ErrRemoteDisabled }
func (remoteDisabled) Delete(string) error                    { return repository.ErrRemoteDisabled }
func (remoteDisabled) GetByID(string) (*entities.Planner, error) {
	return nil, repository.ErrRemoteDisabled
}
