package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/red7x7/membership-api/internal/dto"
	"github.com/red7x7/membership-api/internal/models"
)

func TestContactRequestHandler_Create_SelfRequest(t *testing.T) {
	env := setupTestEnv(t)
	maria := env.createUser(t, "Maria", "maria@red7x7.cl", models.RoleMember, models.MembershipSocio7x7, "")

	w := env.request(t, http.MethodPost, "/api/contact-requests", map[string]interface{}{
		"targetId": maria.ID,
	}, env.tokenFor(t, maria))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContactRequestHandler_Create_UnknownTarget(t *testing.T) {
	env := setupTestEnv(t)
	maria := env.createUser(t, "Maria", "maria@red7x7.cl", models.RoleMember, models.MembershipSocio7x7, "")

	w := env.request(t, http.MethodPost, "/api/contact-requests", map[string]interface{}{
		"targetId": 9999,
	}, env.tokenFor(t, maria))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContactRequestHandler_Create_DuplicatePendingAndReverse(t *testing.T) {
	env := setupTestEnv(t)
	maria := env.createUser(t, "Maria", "maria@red7x7.cl", models.RoleMember, models.MembershipSocio7x7, "")
	pedro := env.createUser(t, "Pedro", "pedro@red7x7.cl", models.RoleMember, models.MembershipSocio7x7, "")

	first := env.request(t, http.MethodPost, "/api/contact-requests", map[string]interface{}{
		"targetId": pedro.ID,
	}, env.tokenFor(t, maria))
	require.Equal(t, http.StatusCreated, first.Code)

	var created dto.ContactRequestDTO
	decodeJSON(t, first, &created)
	require.Equal(t, models.RequestPending, created.Status)
	require.Nil(t, created.ResolvedAt)
	require.NotNil(t, created.Target)
	require.Equal(t, pedro.Email, created.Target.Email)

	second := env.request(t, http.MethodPost, "/api/contact-requests", map[string]interface{}{
		"targetId": pedro.ID,
	}, env.tokenFor(t, maria))
	require.Equal(t, http.StatusConflict, second.Code)

	// The reverse direction is a distinct pair and is allowed.
	reverse := env.request(t, http.MethodPost, "/api/contact-requests", map[string]interface{}{
		"targetId": maria.ID,
	}, env.tokenFor(t, pedro))
	require.Equal(t, http.StatusCreated, reverse.Code)
}

func TestContactRequestHandler_UpdateStatus_Authorization(t *testing.T) {
	env := setupTestEnv(t)
	maria := env.createUser(t, "Maria", "maria@red7x7.cl", models.RoleMember, models.MembershipSocio7x7, "")
	pedro := env.createUser(t, "Pedro", "pedro@red7x7.cl", models.RoleMember, models.MembershipSocio7x7, "")
	outsider := env.createUser(t, "Olga", "olga@red7x7.cl", models.RoleMember, models.MembershipSocio7x7, "")
	admin := env.createUser(t, "Ana", "admin@red7x7.cl", models.RoleAdmin, models.MembershipPro, "")

	request, err := env.requestService.Create(maria.ID, pedro.ID)
	require.NoError(t, err)
	path := fmt.Sprintf("/api/contact-requests/%d/status", request.ID)

	// Neither the requester nor a bystander may resolve the request.
	forRequester := env.request(t, http.MethodPatch, path, map[string]interface{}{"status": "APPROVED"}, env.tokenFor(t, maria))
	require.Equal(t, http.StatusForbidden, forRequester.Code)
	forOutsider := env.request(t, http.MethodPatch, path, map[string]interface{}{"status": "APPROVED"}, env.tokenFor(t, outsider))
	require.Equal(t, http.StatusForbidden, forOutsider.Code)

	// The target may.
	approved := env.request(t, http.MethodPatch, path, map[string]interface{}{"status": "APPROVED"}, env.tokenFor(t, pedro))
	require.Equal(t, http.StatusOK, approved.Code)

	var resp dto.ContactRequestDTO
	decodeJSON(t, approved, &resp)
	require.Equal(t, models.RequestApproved, resp.Status)
	require.NotNil(t, resp.ResolvedAt)

	// Terminal states are locked, even for admins.
	reopened := env.request(t, http.MethodPatch, path, map[string]interface{}{"status": "REJECTED"}, env.tokenFor(t, admin))
	require.Equal(t, http.StatusConflict, reopened.Code)
}

func TestContactRequestHandler_UpdateStatus_NotFound(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.createUser(t, "Ana", "admin@red7x7.cl", models.RoleAdmin, models.MembershipPro, "")

	w := env.request(t, http.MethodPatch, "/api/contact-requests/9999/status", map[string]interface{}{
		"status": "APPROVED",
	}, env.tokenFor(t, admin))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestContactRequestHandler_UpdateStatus_InvalidStatus(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.createUser(t, "Ana", "admin@red7x7.cl", models.RoleAdmin, models.MembershipPro, "")

	w := env.request(t, http.MethodPatch, "/api/contact-requests/1/status", map[string]interface{}{
		"status": "MAYBE",
	}, env.tokenFor(t, admin))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContactRequestHandler_List_NewestFirst(t *testing.T) {
	env := setupTestEnv(t)
	maria := env.createUser(t, "Maria", "maria@red7x7.cl", models.RoleMember, models.MembershipSocio7x7, "")
	pedro := env.createUser(t, "Pedro", "pedro@red7x7.cl", models.RoleMember, models.MembershipSocio7x7, "")
	olga := env.createUser(t, "Olga", "olga@red7x7.cl", models.RoleMember, models.MembershipSocio7x7, "")

	outbound, err := env.requestService.Create(maria.ID, pedro.ID)
	require.NoError(t, err)
	inbound, err := env.requestService.Create(olga.ID, maria.ID)
	require.NoError(t, err)
	// Unrelated to maria, must not appear.
	_, err = env.requestService.Create(pedro.ID, olga.ID)
	require.NoError(t, err)

	w := env.request(t, http.MethodGet, "/api/contact-requests", nil, env.tokenFor(t, maria))
	require.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ContactRequestDTO
	decodeJSON(t, w, &resp)
	require.Len(t, resp, 2)
	require.Equal(t, inbound.ID, resp[0].ID)
	require.Equal(t, outbound.ID, resp[1].ID)
}
