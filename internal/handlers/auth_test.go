package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/red7x7/membership-api/internal/dto"
	"github.com/red7x7/membership-api/internal/models"
	"github.com/red7x7/membership-api/internal/token"
)

func TestAuthHandler_Register(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/auth/register", map[string]interface{}{
		"name":     "New Member",
		"email":    "new@red7x7.cl",
		"password": "supersecret",
		"company":  "Acme",
	}, "")

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AuthResponse
	decodeJSON(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "New Member", resp.User.Name)
	require.Equal(t, models.RoleMember, resp.User.Role)
	require.Equal(t, models.MembershipSocio7x7, resp.User.Membership)

	// The issued token must be accepted straight away.
	me := env.request(t, http.MethodGet, "/api/auth/me", nil, resp.Token)
	require.Equal(t, http.StatusOK, me.Code)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser(t, "Existing", "taken@red7x7.cl", models.RoleMember, models.MembershipSocio7x7, "")

	w := env.request(t, http.MethodPost, "/api/auth/register", map[string]interface{}{
		"name":     "Someone Else",
		"email":    "taken@red7x7.cl",
		"password": "supersecret",
	}, "")

	require.Equal(t, http.StatusConflict, w.Code)

	var count int64
	env.db.Model(&models.User{}).Where("email = ?", "taken@red7x7.cl").Count(&count)
	require.EqualValues(t, 1, count)
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/auth/register", map[string]interface{}{
		"name":     "Weak",
		"email":    "weak@red7x7.cl",
		"password": "abc",
	}, "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "details")
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser(t, "Maria", "maria@red7x7.cl", models.RoleMember, models.MembershipSocio7x7, "")

	w := env.request(t, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "maria@red7x7.cl",
		"password": "supersecret",
	}, "")

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.AuthResponse
	decodeJSON(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "maria@red7x7.cl", resp.User.Email)
}

func TestAuthHandler_Login_GenericFailure(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser(t, "Maria", "maria@red7x7.cl", models.RoleMember, models.MembershipSocio7x7, "")

	unknown := env.request(t, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "ghost@red7x7.cl",
		"password": "supersecret",
	}, "")
	wrongPassword := env.request(t, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "maria@red7x7.cl",
		"password": "not-the-password",
	}, "")

	require.Equal(t, http.StatusUnauthorized, unknown.Code)
	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	// Same body for both so account existence does not leak.
	require.Equal(t, unknown.Body.String(), wrongPassword.Body.String())
}

func TestAuthHandler_Me_IncludesContactRequests(t *testing.T) {
	env := setupTestEnv(t)
	maria := env.createUser(t, "Maria", "maria@red7x7.cl", models.RoleMember, models.MembershipSocio7x7, "")
	pedro := env.createUser(t, "Pedro", "pedro@red7x7.cl", models.RoleMember, models.MembershipSocio7x7, "")

	_, err := env.requestService.Create(pedro.ID, maria.ID)
	require.NoError(t, err)

	w := env.request(t, http.MethodGet, "/api/auth/me", nil, env.tokenFor(t, maria))
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.MeResponse
	decodeJSON(t, w, &resp)
	require.Equal(t, maria.ID, resp.ID)
	require.Len(t, resp.ContactRequests, 1)
	require.Equal(t, pedro.ID, resp.ContactRequests[0].RequesterID)
}

func TestAuthMiddleware_RejectsExpiredToken(t *testing.T) {
	env := setupTestEnv(t)
	maria := env.createUser(t, "Maria", "maria@red7x7.cl", models.RoleMember, models.MembershipSocio7x7, "")

	expired := token.NewManagerWithTTL("test-secret", -time.Minute)
	signed, err := expired.Issue(maria)
	require.NoError(t, err)

	w := env.request(t, http.MethodGet, "/api/auth/me", nil, signed)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_RejectsMissingToken(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/auth/me", nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_ForgotPassword_NoEnumeration(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser(t, "Maria", "maria@red7x7.cl", models.RoleMember, models.MembershipSocio7x7, "")

	known := env.request(t, http.MethodPost, "/api/auth/forgot-password", map[string]interface{}{
		"email": "maria@red7x7.cl",
	}, "")
	unknown := env.request(t, http.MethodPost, "/api/auth/forgot-password", map[string]interface{}{
		"email": "ghost@red7x7.cl",
	}, "")

	require.Equal(t, http.StatusOK, known.Code)
	require.Equal(t, http.StatusOK, unknown.Code)
	require.Equal(t, known.Body.String(), unknown.Body.String())
}

func TestHealthEndpoint(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/health", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"ok"`)
}
