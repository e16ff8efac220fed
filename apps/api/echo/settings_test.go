package echoapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crestview/admin/core/settings"
)

func TestSettingsAPI_retrieveDefaults(t *testing.T) {
	server, _, _ := newTestServer(t)

	req, rec := newRequest(http.MethodGet, "/v1/settings")
	server.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marshalObj(t, settings.Defaults())}, rec)
}

func TestSettingsAPI_update(t *testing.T) {
	server, _, _ := newTestServer(t)

	body := marshalObj(t, settings.Settings{
		SchoolName: "Crestview North", Timezone: "America/New_York",
		EmailNotifications: false, SMSNotifications: true, AuditMode: false,
	})
	req, rec := newRequest(http.MethodPut, "/v1/settings", body)
	server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var saved settings.Settings
	decodeBody(t, rec, &saved)
	assert.Equal(t, "Crestview North", saved.SchoolName)

	// round-trips through the store
	req, rec = newRequest(http.MethodGet, "/v1/settings")
	server.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: body}, rec)
}

func TestSettingsAPI_updateInvalidLeavesStoreUntouched(t *testing.T) {
	server, _, _ := newTestServer(t)

	req, rec := newRequest(http.MethodPut, "/v1/settings", []byte(`{"schoolName": "", "timezone": "UTC"}`))
	server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req, rec = newRequest(http.MethodGet, "/v1/settings")
	server.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marshalObj(t, settings.Defaults())}, rec)
}

func TestSettingsAPI_auditExport(t *testing.T) {
	server, _, _ := newTestServer(t)

	req, rec := newRequest(http.MethodGet, "/v1/settings/audit-export")
	server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="audit-export.json"`, rec.Header().Get("Content-Disposition"))

	var export settings.AuditExport
	decodeBody(t, rec, &export)
	assert.Equal(t, settings.Defaults().SchoolName, export.SchoolName)
	assert.False(t, export.GeneratedAt.IsZero())
	assert.NotEmpty(t, export.Notes)
}
