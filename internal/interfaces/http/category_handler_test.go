package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/application/auth"
	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/application/dto"
	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/application/usecase"
	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/infrastructure/memory"
	infrapdf "github.com/EyadOmar/ezee-pay-ng-dashboard/internal/infrastructure/pdf"
	apphttp "github.com/EyadOmar/ezee-pay-ng-dashboard/internal/interfaces/http"
	pkgjwt "github.com/EyadOmar/ezee-pay-ng-dashboard/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret  = "test-secret-key-for-unit-tests"
	testAdminEmail = "admin@test.local"
	testAdminPass  = "s3cret-pass"
	testIssuer     = "ezee-pay-test"
	testExpMin     = 60
)

// buildTestApp wires a Fiber app with the in-memory store, seeded with the
// demo tree, exactly as the router registers it.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	repo := memory.NewCategoryRepository()
	require.NoError(t, repo.Seed())

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPass), bcrypt.MinCost)
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CategoryUC: usecase.NewCategoryUseCase(repo),
		ReportUC:   usecase.NewReportUseCase(repo, infrapdf.NewMarotoReportGenerator()),
		AuthUC: auth.NewAuthUseCase(
			auth.Admin{Email: testAdminEmail, Name: "Test Admin", PasswordHash: string(hash)},
			auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer},
		),
		JWTSecret: testJWTSecret,
	})
	return app
}

func bearerToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testAdminEmail, "admin", testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any, authed bool) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", bearerToken(t))
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// envelope decodes the ApiResponse wrapper with Data left as raw JSON.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Success bool            `json:"success"`
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	defer resp.Body.Close()
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_ValidCredentialsReturnToken(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Email: testAdminEmail, Password: testAdminPass}, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	var out dto.LoginResponse
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, testAdminEmail, out.User.Email)
}

func TestLogin_WrongPasswordRejected(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Email: testAdminEmail, Password: "wrong"}, false)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCategories_RequireBearerToken(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/categories", nil, false)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Category surface
// ──────────────────────────────────────────────────────────────────────────────

func TestListCategories_TreeShape(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/categories", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	var trees []dto.CategoryTreeResponse
	require.NoError(t, json.Unmarshal(env.Data, &trees))
	require.NotEmpty(t, trees)
	for _, tree := range trees {
		assert.Nil(t, tree.ParentID, "tree view lists roots only at the top level")
	}
}

// Searching for a child name through the HTTP surface exercises the
// inclusive-parent rule end to end.
func TestListCategories_SearchIncludesParentWithAllChildren(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/categories?search=laptops", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	var trees []dto.CategoryTreeResponse
	require.NoError(t, json.Unmarshal(env.Data, &trees))
	require.Len(t, trees, 1)
	assert.Equal(t, "Electronics", trees[0].NameEn)
	assert.Len(t, trees[0].Children, 2, "the non-matching sibling stays included")
}

func TestListCategories_InvalidDateRejected(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/categories?date_from=03/10/2025", nil, true)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateUpdateDeleteCategory_RoundTrip(t *testing.T) {
	app := buildTestApp(t)

	// Create a new root.
	create := dto.SaveCategoryRequest{
		NameEn:        "Toys",
		NameAr:        "ألعاب",
		PricingMethod: "fixed",
		SalesStrategy: "filo",
	}
	resp := doJSON(t, app, http.MethodPost, "/api/categories", create, true)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	var created dto.CategoryResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotEmpty(t, created.ID)

	// Update it.
	create.NameEn = "Toys & Games"
	resp = doJSON(t, app, http.MethodPut, "/api/categories/"+created.ID, create, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env = decodeEnvelope(t, resp)
	var updated dto.CategoryResponse
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "Toys & Games", updated.NameEn)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	// Fetch the detail.
	resp = doJSON(t, app, http.MethodGet, "/api/categories/"+created.ID+"?lang=ar", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env = decodeEnvelope(t, resp)
	var detail dto.CategoryDetailResponse
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	assert.Equal(t, "ثابت", detail.PricingMethodLabel)

	// Delete it; a second delete of the same id stays benign.
	resp = doJSON(t, app, http.MethodDelete, "/api/categories/"+created.ID, nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, app, http.MethodDelete, "/api/categories/"+created.ID, nil, true)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/categories/"+created.ID, nil, true)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateCategory_ValidationFaults(t *testing.T) {
	app := buildTestApp(t)

	// Missing Arabic name.
	bad := dto.SaveCategoryRequest{NameEn: "Toys", PricingMethod: "fixed", SalesStrategy: "fifo"}
	resp := doJSON(t, app, http.MethodPost, "/api/categories", bad, true)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Parent referencing a child.
	child := "cat-phones"
	bad = dto.SaveCategoryRequest{
		NameEn: "Chargers", NameAr: "شواحن",
		ParentID:      &child,
		PricingMethod: "fixed", SalesStrategy: "fifo",
	}
	resp = doJSON(t, app, http.MethodPost, "/api/categories", bad, true)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_PARENT")
}

func TestInheritanceEndpoint(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/categories/inheritance?parent_id=cat-groceries", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	var inh dto.InheritanceResponse
	require.NoError(t, json.Unmarshal(env.Data, &inh))
	assert.True(t, inh.Locked)
	assert.Equal(t, "actual_cost", inh.PricingMethod)

	resp = doJSON(t, app, http.MethodGet, "/api/categories/inheritance", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env = decodeEnvelope(t, resp)
	require.NoError(t, json.Unmarshal(env.Data, &inh))
	assert.False(t, inh.Locked)
}

func TestLabelsEndpoint_Localized(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/catalog/labels?lang=ar", nil, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	var labels dto.LabelsResponse
	require.NoError(t, json.Unmarshal(env.Data, &labels))
	require.NotEmpty(t, labels.PricingMethods)
	assert.Equal(t, "fixed", labels.PricingMethods[0].Value)
	assert.Equal(t, "ثابت", labels.PricingMethods[0].Label)
}

func TestReportEndpoint_ReturnsPDF(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/categories/report", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")), "response must be a PDF document")
}
