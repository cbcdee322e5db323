package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"content-pipeline/domain/dto"
	"content-pipeline/infrastructure/configuration"
	"content-pipeline/infrastructure/persistence"
	"content-pipeline/infrastructure/utils"
	httpHandler "content-pipeline/interfaces/http"
	"content-pipeline/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "router-secret"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := persistence.NewSQLiteDB(configuration.Database{Path: filepath.Join(t.TempDir(), "pipeline.db")})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, persistence.InitializeStorage(context.Background(), db))

	uc := usecase.NewPipelineUsecase(
		persistence.NewAccountRepository(db),
		persistence.NewTrendRepository(db),
		persistence.NewVideoRepository(db),
		persistence.NewAnalyticsRepository(db, sqlDB),
		persistence.NewTrendingSoundRepository(db),
		nil,
	)
	return InitiateRouter(httpHandler.NewPipelineHandler(uc), httpHandler.NewHealthHandler(sqlDB), secret)
}

func call(t *testing.T, r http.Handler, method, path, body string, auth bool) (int, dto.Res) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if auth {
		token, err := utils.GenerateStageToken("scheduler", secret, time.Hour)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var res dto.Res
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") && method != http.MethodOptions {
		_ = json.Unmarshal(w.Body.Bytes(), &res)
	}
	return w.Code, res
}

func TestRouter_HealthzIsPublic(t *testing.T) {
	r := newTestRouter(t)
	code, _ := call(t, r, http.MethodGet, "/healthz", "", false)
	assert.Equal(t, http.StatusOK, code)
}

func TestRouter_APIRequiresToken(t *testing.T) {
	r := newTestRouter(t)
	code, res := call(t, r, http.MethodGet, "/api/accounts", "", false)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "401", res.ResponseCode)
}

func TestRouter_PipelineFlow(t *testing.T) {
	r := newTestRouter(t)

	code, _ := call(t, r, http.MethodPost, "/api/accounts", `{"platform":"tiktok","username":"calm.facts","niche":"science"}`, true)
	require.Equal(t, http.StatusCreated, code)

	code, _ = call(t, r, http.MethodPost, "/api/accounts", `{"platform":"youtube","username":"calm.facts","niche":"science"}`, true)
	assert.Equal(t, http.StatusConflict, code)

	code, _ = call(t, r, http.MethodPost, "/api/trends", `{"title":"Octopus dreams","source":"reddit","niche":"science","score":87.5}`, true)
	require.Equal(t, http.StatusCreated, code)

	code, _ = call(t, r, http.MethodPost, "/api/videos", `{"account_id":1,"trend_id":1,"script":"Octopuses may dream.","file_type":"mp4"}`, true)
	require.Equal(t, http.StatusCreated, code)

	code, _ = call(t, r, http.MethodPost, "/api/videos", `{"account_id":999,"script":"orphan","file_type":"mp4"}`, true)
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	code, _ = call(t, r, http.MethodPost, "/api/videos/1/analytics", `{"views":120,"likes":9}`, true)
	require.Equal(t, http.StatusCreated, code)
	code, _ = call(t, r, http.MethodPost, "/api/videos/1/analytics", `{"views":-1}`, true)
	assert.Equal(t, http.StatusBadRequest, code)

	code, res := call(t, r, http.MethodGet, "/api/videos/1/analytics/summary", "", true)
	require.Equal(t, http.StatusOK, code)
	summary, ok := res.Data.(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 1, summary["snapshots"])
	assert.EqualValues(t, 120, summary["views"])

	code, res = call(t, r, http.MethodPatch, "/api/videos/1/status", `{"status":"Rendered "}`, true)
	assert.Equal(t, http.StatusOK, code)
	video, ok := res.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "rendered", video["status"])
	code, _ = call(t, r, http.MethodPatch, "/api/videos/1/status", `{"status":"exploded"}`, true)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = call(t, r, http.MethodPost, "/api/videos/1/uploaded", `{"video_path":"/out/1.mp4"}`, true)
	assert.Equal(t, http.StatusOK, code)

	code, _ = call(t, r, http.MethodGet, fmt.Sprintf("/api/accounts/%d/videos", 1), "", true)
	assert.Equal(t, http.StatusOK, code)

	code, _ = call(t, r, http.MethodPost, "/api/sounds", `{"sound_id":"snd-1","title":"Lo-fi rain","vibe":"calm"}`, true)
	require.Equal(t, http.StatusCreated, code)
	code, _ = call(t, r, http.MethodPost, "/api/sounds/snd-1/use", "", true)
	assert.Equal(t, http.StatusOK, code)
	code, _ = call(t, r, http.MethodPost, "/api/sounds/none/use", "", true)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = call(t, r, http.MethodGet, "/api/videos/42", "", true)
	assert.Equal(t, http.StatusNotFound, code)
}
