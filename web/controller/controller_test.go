package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsprime/prime-cms/database"
	"github.com/jsprime/prime-cms/logger"
	"github.com/jsprime/prime-cms/web/service"
)

var testSecret = []byte("test-secret")

func TestMain(m *testing.M) {
	os.Setenv("PCMS_LOG_FOLDER", os.TempDir())
	logger.InitLogger(logging.DEBUG)
	os.Exit(m.Run())
}

func setup() {
	dbPath := "test.db"
	os.Remove(dbPath)
	database.InitDB(dbPath)
}

func teardown() {
	db, _ := database.GetDB().DB()
	db.Close()
	os.Remove("test.db")
}

type fakeStore struct {
	objects map[string][]byte
	deletes []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}}
}

func (f *fakeStore) Put(_ context.Context, key string, _ string, body io.Reader, _ int64) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.objects[key] = data
	return nil
}

func (f *fakeStore) Delete(_ context.Context, key string) error {
	f.deletes = append(f.deletes, key)
	delete(f.objects, key)
	return nil
}

func testEngine(blob *fakeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	uploads := service.NewUploadService(blob)

	g := engine.Group("/")
	NewIndexController(g, testSecret)
	NewSettingsController(g, testSecret)
	NewDashboardController(g)
	NewBrandController(g, service.NewBrandService(uploads))
	NewEquipmentController(g, service.NewEquipmentService(uploads))
	NewProjectController(g, service.NewProjectService(uploads))
	NewMilestoneController(g)
	NewCoreValueController(g)
	NewMissionVisionController(g)
	NewContactController(g)
	return engine
}

func postJSON(engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	return w
}

// multipartBody builds a multipart form with string fields and one
// optional file part.
func multipartBody(t *testing.T, fields map[string]string, fileField, filename, contentType string, fileSize int) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileField != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, fileField, filename))
		h.Set("Content-Type", contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(bytes.Repeat([]byte("x"), fileSize))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	setup()
	defer teardown()

	engine := testEngine(newFakeStore())
	require.NoError(t, new(service.UserService).ResetCredentials("realuser", "rightpassword"))

	unknown := postJSON(engine, http.MethodPost, "/api/login",
		gin.H{"username": "nonexistent", "password": "anything"})
	wrongPass := postJSON(engine, http.MethodPost, "/api/login",
		gin.H{"username": "realuser", "password": "wrongpassword"})

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.JSONEq(t, unknown.Body.String(), wrongPass.Body.String())
}

func TestLoginSetsHttpOnlyCookie(t *testing.T) {
	setup()
	defer teardown()

	engine := testEngine(newFakeStore())
	require.NoError(t, new(service.UserService).ResetCredentials("admin", "s3cret"))

	w := postJSON(engine, http.MethodPost, "/api/login",
		gin.H{"username": "admin", "password": "s3cret"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, "token", cookie.Name)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 8*60*60, cookie.MaxAge)
}

func TestProfileRequiresSession(t *testing.T) {
	setup()
	defer teardown()

	engine := testEngine(newFakeStore())
	require.NoError(t, new(service.UserService).ResetCredentials("admin", "s3cret"))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/profile", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	login := postJSON(engine, http.MethodPost, "/api/login",
		gin.H{"username": "admin", "password": "s3cret"})
	require.Equal(t, http.StatusOK, login.Code)
	cookie := login.Result().Cookies()[0]

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.AddCookie(cookie)
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"username":"admin"}`, w.Body.String())
}

func TestCreateBrandRoundTrip(t *testing.T) {
	setup()
	defer teardown()

	blob := newFakeStore()
	engine := testEngine(blob)

	body, contentType := multipartBody(t,
		map[string]string{"brand_name": "Acme"},
		"brand_img", "logo.png", "image/png", 2*1024*1024)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/brands", body)
	req.Header.Set("Content-Type", contentType)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Id         int    `json:"id"`
		BrandName  string `json:"brandName"`
		BrandImage string `json:"brandImage"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.Id)
	assert.Equal(t, "Acme", created.BrandName)
	assert.Contains(t, created.BrandImage, "brands/")
	assert.Contains(t, blob.objects, created.BrandImage)

	list := httptest.NewRecorder()
	engine.ServeHTTP(list, httptest.NewRequest(http.MethodGet, "/api/brands", nil))
	require.Equal(t, http.StatusOK, list.Code)
	assert.Contains(t, list.Body.String(), fmt.Sprintf(`"id":%d`, created.Id))
}

func TestCreateEquipmentOversizedFile(t *testing.T) {
	setup()
	defer teardown()

	blob := newFakeStore()
	engine := testEngine(blob)

	body, contentType := multipartBody(t,
		map[string]string{"equipment_name": "Excavator", "description": "20t tracked excavator"},
		"equipment_img", "photo.jpg", "image/jpeg", 6*1024*1024)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/equipments", body)
	req.Header.Set("Content-Type", contentType)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "size")
	assert.Empty(t, blob.objects)

	list := httptest.NewRecorder()
	engine.ServeHTTP(list, httptest.NewRequest(http.MethodGet, "/api/equipments", nil))
	assert.JSONEq(t, `[]`, list.Body.String())
}

func TestUpdateBrandWithoutFileKeepsKey(t *testing.T) {
	setup()
	defer teardown()

	blob := newFakeStore()
	engine := testEngine(blob)

	createBody, createType := multipartBody(t,
		map[string]string{"brand_name": "Acme"},
		"brand_img", "logo.png", "image/png", 1024)
	created := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/brands", createBody)
	req.Header.Set("Content-Type", createType)
	engine.ServeHTTP(created, req)
	require.Equal(t, http.StatusCreated, created.Code)

	var brand struct {
		Id         int    `json:"id"`
		BrandImage string `json:"brandImage"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &brand))

	updateBody, updateType := multipartBody(t,
		map[string]string{"brand_name": "Acme Industrial", "old_brand_img": brand.BrandImage},
		"", "", "", 0)
	updated := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/api/brands/%d", brand.Id), updateBody)
	req.Header.Set("Content-Type", updateType)
	engine.ServeHTTP(updated, req)

	require.Equal(t, http.StatusOK, updated.Code)
	var after struct {
		BrandName  string `json:"brandName"`
		BrandImage string `json:"brandImage"`
	}
	require.NoError(t, json.Unmarshal(updated.Body.Bytes(), &after))
	assert.Equal(t, "Acme Industrial", after.BrandName)
	assert.Equal(t, brand.BrandImage, after.BrandImage)
	assert.Empty(t, blob.deletes)
}

func TestDeleteBrandTwice(t *testing.T) {
	setup()
	defer teardown()

	blob := newFakeStore()
	engine := testEngine(blob)

	body, contentType := multipartBody(t,
		map[string]string{"brand_name": "Acme"},
		"brand_img", "logo.png", "image/png", 1024)
	created := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/brands", body)
	req.Header.Set("Content-Type", contentType)
	engine.ServeHTTP(created, req)
	require.Equal(t, http.StatusCreated, created.Code)

	var brand struct {
		Id int `json:"id"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &brand))

	first := httptest.NewRecorder()
	engine.ServeHTTP(first, httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/brands/%d", brand.Id), nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	engine.ServeHTTP(second, httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/brands/%d", brand.Id), nil))
	assert.Equal(t, http.StatusNotFound, second.Code)
}

func TestLogsEndpoint(t *testing.T) {
	setup()
	defer teardown()

	engine := testEngine(newFakeStore())
	require.NoError(t, new(service.UserService).ResetCredentials("admin", "s3cret"))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/logs", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	login := postJSON(engine, http.MethodPost, "/api/login",
		gin.H{"username": "admin", "password": "s3cret"})
	require.Equal(t, http.StatusOK, login.Code)
	cookie := login.Result().Cookies()[0]

	logger.Info("logs endpoint marker entry")

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/logs?count=100&level=debug", nil)
	req.AddCookie(cookie)
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var lines []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lines))
	found := false
	for _, line := range lines {
		if strings.Contains(line, "logs endpoint marker entry") {
			found = true
			break
		}
	}
	assert.True(t, found)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/logs?count=bogus", nil)
	req.AddCookie(cookie)
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChangePasswordFlow(t *testing.T) {
	setup()
	defer teardown()

	engine := testEngine(newFakeStore())
	require.NoError(t, new(service.UserService).ResetCredentials("admin", "oldpass"))

	// Without a session cookie the endpoint refuses outright.
	w := postJSON(engine, http.MethodPatch, "/api/settings",
		gin.H{"currentPassword": "oldpass", "newPassword": "newpass"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	login := postJSON(engine, http.MethodPost, "/api/login",
		gin.H{"username": "admin", "password": "oldpass"})
	require.Equal(t, http.StatusOK, login.Code)
	cookie := login.Result().Cookies()[0]

	// Wrong current password is rejected even with a valid session.
	data, _ := json.Marshal(gin.H{"currentPassword": "nope", "newPassword": "newpass"})
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/settings", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	data, _ = json.Marshal(gin.H{"currentPassword": "oldpass", "newPassword": "newpass"})
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPatch, "/api/settings", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	relogin := postJSON(engine, http.MethodPost, "/api/login",
		gin.H{"username": "admin", "password": "newpass"})
	assert.Equal(t, http.StatusOK, relogin.Code)
}
