package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/carlos0768/lexisync/internal/models"
	"github.com/carlos0768/lexisync/pkg/api"
)

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient  *http.Client
	tokenSource TokenSource
	baseURL     string
}

// NewClient создает новый API клиент.
// tokenSource может быть nil, тогда авторизованные вызовы вернут ошибку.
func NewClient(baseURL string, tokenSource TokenSource) *Client {
	return &Client{
		baseURL:     baseURL,
		tokenSource: tokenSource,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", req, &resp, false)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", req, &resp, false)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Refresh обновляет access token по refresh token
func (c *Client) Refresh(ctx context.Context, req api.RefreshRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/refresh", req, &resp, false)
	if err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	return &resp, nil
}

// Logout инвалидирует refresh token на сервере
func (c *Client) Logout(ctx context.Context) error {
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/logout", nil, nil, true); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) error {
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/health", nil, nil, false); err != nil {
		return fmt.Errorf("health request failed: %w", err)
	}
	return nil
}

// CreateProjectWithID создает проект с client-generated id
func (c *Client) CreateProjectWithID(ctx context.Context, project *models.Project) error {
	req := api.CreateProjectRequest{
		ID:         project.ID,
		Title:      project.Title,
		IsFavorite: project.IsFavorite,
		CreatedAt:  project.CreatedAt,
	}
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/projects", req, nil, true); err != nil {
		return fmt.Errorf("create project request failed: %w", err)
	}
	return nil
}

// GetProjects возвращает все проекты аутентифицированного пользователя
func (c *Client) GetProjects(ctx context.Context) ([]*models.Project, error) {
	var resp api.ProjectsResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/projects", nil, &resp, true); err != nil {
		return nil, fmt.Errorf("get projects request failed: %w", err)
	}

	projects := make([]*models.Project, 0, len(resp.Projects))
	for i := range resp.Projects {
		projects = append(projects, projectFromAPI(&resp.Projects[i]))
	}
	return projects, nil
}

// GetProject возвращает проект по id
func (c *Client) GetProject(ctx context.Context, id string) (*models.Project, error) {
	var resp api.Project
	path := "/api/v1/projects/" + url.PathEscape(id)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp, true); err != nil {
		return nil, fmt.Errorf("get project request failed: %w", err)
	}
	return projectFromAPI(&resp), nil
}

// UpdateProject применяет частичное обновление проекта
func (c *Client) UpdateProject(ctx context.Context, id string, update models.ProjectUpdate) error {
	req := api.UpdateProjectRequest{
		Title:      update.Title,
		IsFavorite: update.IsFavorite,
	}
	path := "/api/v1/projects/" + url.PathEscape(id)
	if err := c.doRequest(ctx, http.MethodPatch, path, req, nil, true); err != nil {
		return fmt.Errorf("update project request failed: %w", err)
	}
	return nil
}

// DeleteProject удаляет проект и каскадно все его слова
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	path := "/api/v1/projects/" + url.PathEscape(id)
	if err := c.doRequest(ctx, http.MethodDelete, path, nil, nil, true); err != nil {
		return fmt.Errorf("delete project request failed: %w", err)
	}
	return nil
}

// CreateWordsWithIDs создает батч слов с client-generated id
func (c *Client) CreateWordsWithIDs(ctx context.Context, projectID string, words []*models.Word) error {
	req := api.CreateWordsRequest{
		ProjectID: projectID,
		Words:     make([]api.Word, 0, len(words)),
	}
	for _, word := range words {
		req.Words = append(req.Words, *wordToAPI(word))
	}

	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/words", req, nil, true); err != nil {
		return fmt.Errorf("create words request failed: %w", err)
	}
	return nil
}

// GetWords возвращает слова проекта
func (c *Client) GetWords(ctx context.Context, projectID string) ([]*models.Word, error) {
	var resp api.WordsResponse
	path := "/api/v1/projects/" + url.PathEscape(projectID) + "/words"
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp, true); err != nil {
		return nil, fmt.Errorf("get words request failed: %w", err)
	}
	return wordsFromAPI(resp.Words), nil
}

// GetWordsByProjects возвращает слова нескольких проектов одним запросом.
// Батчевый вызов нужен full sync'у, чтобы не делать запрос на каждый проект.
func (c *Client) GetWordsByProjects(ctx context.Context, projectIDs []string) ([]*models.Word, error) {
	req := api.WordsByProjectsRequest{ProjectIDs: projectIDs}

	var resp api.WordsResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/words/query", req, &resp, true); err != nil {
		return nil, fmt.Errorf("get words by projects request failed: %w", err)
	}
	return wordsFromAPI(resp.Words), nil
}

// UpdateWord применяет частичное обновление слова
func (c *Client) UpdateWord(ctx context.Context, id string, update models.WordUpdate) error {
	req := api.UpdateWordRequest{
		English:           update.English,
		Japanese:          update.Japanese,
		ExampleSentence:   update.ExampleSentence,
		ExampleSentenceJa: update.ExampleSentenceJa,
		Status:            (*string)(update.Status),
		Distractors:       update.Distractors,
		Review:            update.Review,
		IsFavorite:        update.IsFavorite,
	}
	path := "/api/v1/words/" + url.PathEscape(id)
	if err := c.doRequest(ctx, http.MethodPatch, path, req, nil, true); err != nil {
		return fmt.Errorf("update word request failed: %w", err)
	}
	return nil
}

// DeleteWord удаляет одно слово
func (c *Client) DeleteWord(ctx context.Context, id string) error {
	path := "/api/v1/words/" + url.PathEscape(id)
	if err := c.doRequest(ctx, http.MethodDelete, path, nil, nil, true); err != nil {
		return fmt.Errorf("delete word request failed: %w", err)
	}
	return nil
}

// DeleteWordsByProject удаляет все слова проекта
func (c *Client) DeleteWordsByProject(ctx context.Context, projectID string) error {
	path := "/api/v1/projects/" + url.PathEscape(projectID) + "/words"
	if err := c.doRequest(ctx, http.MethodDelete, path, nil, nil, true); err != nil {
		return fmt.Errorf("delete words request failed: %w", err)
	}
	return nil
}

// GenerateShareID присваивает проекту публичный токен
func (c *Client) GenerateShareID(ctx context.Context, projectID string) (string, error) {
	var resp api.ShareResponse
	path := "/api/v1/projects/" + url.PathEscape(projectID) + "/share"
	if err := c.doRequest(ctx, http.MethodPost, path, nil, &resp, true); err != nil {
		return "", fmt.Errorf("generate share id request failed: %w", err)
	}
	return resp.ShareID, nil
}

// GetProjectByShareID возвращает расшаренный проект
func (c *Client) GetProjectByShareID(ctx context.Context, shareID string) (*models.Project, error) {
	var resp api.Project
	path := "/api/v1/share/" + url.PathEscape(shareID)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp, false); err != nil {
		return nil, fmt.Errorf("get shared project request failed: %w", err)
	}
	return projectFromAPI(&resp), nil
}

// GetWordsByShareID возвращает слова расшаренного проекта
func (c *Client) GetWordsByShareID(ctx context.Context, shareID string) ([]*models.Word, error) {
	var resp api.WordsResponse
	path := "/api/v1/share/" + url.PathEscape(shareID) + "/words"
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp, false); err != nil {
		return nil, fmt.Errorf("get shared words request failed: %w", err)
	}
	return wordsFromAPI(resp.Words), nil
}

// ImportSharedProject копирует расшаренный проект под текущего пользователя
func (c *Client) ImportSharedProject(ctx context.Context, shareID string) (*models.Project, []*models.Word, error) {
	req := api.ImportSharedRequest{ShareID: shareID}

	var resp api.ImportSharedResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/share/import", req, &resp, true); err != nil {
		return nil, nil, fmt.Errorf("import shared project request failed: %w", err)
	}

	return projectFromAPI(&resp.Project), wordsFromAPI(resp.Words), nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}, authorized bool) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if authorized {
		if c.tokenSource == nil {
			return ErrUnauthorized
		}
		token, err := c.tokenSource.AccessToken(ctx)
		if err != nil {
			return fmt.Errorf("failed to get access token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return ErrNotFound
		case http.StatusConflict:
			return ErrAlreadyExists
		case http.StatusUnauthorized:
			return ErrUnauthorized
		}

		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
