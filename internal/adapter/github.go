// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-site-keeper/internal/config"
	"github.com/MKhiriev/go-site-keeper/internal/logger"
	"github.com/MKhiriev/go-site-keeper/internal/utils"
	"github.com/MKhiriev/go-site-keeper/models"
)

const acceptHeader = "application/vnd.github+json"

type githubAdapter struct {
	client *utils.HTTPClient

	owner  string
	repo   string
	branch string

	logger *logger.Logger
}

// contentResponse is the subset of the GitHub contents object we read.
type contentResponse struct {
	Path     string `json:"path"`
	SHA      string `json:"sha"`
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

type putRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	SHA     string `json:"sha,omitempty"`
	Branch  string `json:"branch,omitempty"`
}

type putResponse struct {
	Content contentResponse `json:"content"`
}

// NewGitHubAdapter constructs a [RepositoryAdapter] over the GitHub Contents
// REST API. It normalises and validates adapterCfg.BaseURL and configures the
// underlying HTTP client with the request timeout.
//
// Returns an error if the base URL is empty or cannot be parsed, or if the
// owner or repository is missing.
func NewGitHubAdapter(adapterCfg config.Adapter, logger *logger.Logger) (RepositoryAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}
	if adapterCfg.Owner == "" || adapterCfg.Repo == "" {
		return nil, fmt.Errorf("repository owner and name are required")
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &githubAdapter{
		client: client,
		owner:  adapterCfg.Owner,
		repo:   adapterCfg.Repo,
		branch: adapterCfg.Branch,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetFile implements [RepositoryAdapter]. It sends
// GET /repos/{owner}/{repo}/contents/{path}?ref={branch} and decodes the
// revision id and the base64 content.
func (g *githubAdapter) GetFile(ctx context.Context, token, path string) (models.RemoteFileRevision, error) {
	var body contentResponse

	req, err := g.authedRequest(ctx, token)
	if err != nil {
		return models.RemoteFileRevision{}, err
	}
	if g.branch != "" {
		req.SetQueryParam("ref", g.branch)
	}

	resp, err := req.SetResult(&body).Get(g.contentsPath(path))
	if err != nil {
		return models.RemoteFileRevision{}, fmt.Errorf("%w: get %s: %w", ErrNetwork, path, err)
	}
	g.logger.Debug().Str("path", path).Int("status", resp.StatusCode()).Msg("repository file read")
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteFileRevision{}, fmt.Errorf("get %s: %w", path, err)
	}

	revision := models.RemoteFileRevision{Path: path, RevisionID: body.SHA}
	if body.Encoding == "base64" {
		content, err := base64.StdEncoding.DecodeString(stripNewlines(body.Content))
		if err != nil {
			return models.RemoteFileRevision{}, fmt.Errorf("%w: decode %s content: %v", ErrRemote, path, err)
		}
		revision.Content = content
	}

	return revision, nil
}

// PutFile implements [RepositoryAdapter]. It sends
// PUT /repos/{owner}/{repo}/contents/{path} with the base64 content, the
// commit message, the branch, and the revision id when updating.
func (g *githubAdapter) PutFile(ctx context.Context, token string, commit models.FileCommit) (models.RemoteFileRevision, error) {
	branch := commit.Branch
	if branch == "" {
		branch = g.branch
	}

	var body putResponse

	req, err := g.authedRequest(ctx, token)
	if err != nil {
		return models.RemoteFileRevision{}, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(putRequest{
			Message: commit.Message,
			Content: base64.StdEncoding.EncodeToString(commit.Content),
			SHA:     commit.RevisionID,
			Branch:  branch,
		}).
		SetResult(&body).
		Put(g.contentsPath(commit.Path))
	if err != nil {
		return models.RemoteFileRevision{}, fmt.Errorf("%w: put %s: %w", ErrNetwork, commit.Path, err)
	}
	g.logger.Debug().
		Str("path", commit.Path).
		Bool("create", commit.RevisionID == "").
		Int("status", resp.StatusCode()).
		Msg("repository file write")
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteFileRevision{}, fmt.Errorf("put %s: %w", commit.Path, err)
	}

	return models.RemoteFileRevision{
		Path:       commit.Path,
		Content:    commit.Content,
		RevisionID: body.Content.SHA,
	}, nil
}

func (g *githubAdapter) authedRequest(ctx context.Context, token string) (*resty.Request, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("%w: no access token", ErrUnauthorized)
	}
	return g.client.R().
		SetContext(ctx).
		SetHeader("Accept", acceptHeader).
		SetHeader("X-GitHub-Api-Version", "2022-11-28").
		SetAuthToken(token), nil
}

func (g *githubAdapter) contentsPath(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return fmt.Sprintf("/repos/%s/%s/contents/%s",
		url.PathEscape(g.owner), url.PathEscape(g.repo), strings.Join(segments, "/"))
}

func stripNewlines(s string) string {
	return strings.NewReplacer("\n", "", "\r", "").Replace(s)
}
