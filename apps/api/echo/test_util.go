package echoapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crestview/admin/core"
	"github.com/crestview/admin/core/dashboard"
	"github.com/crestview/admin/core/invoice"
	"github.com/crestview/admin/core/parent"
	"github.com/crestview/admin/core/settings"
	"github.com/crestview/admin/core/student"
	"github.com/crestview/admin/core/teacher"
	inmemdb "github.com/crestview/admin/storage/database/inmem"
	testutil "github.com/crestview/admin/tests"
)

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
}

func newTestServer(t *testing.T) (*Server, *inmemdb.DB, *testutil.Logger) {
	t.Helper()

	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open() failed: %v", err)
	}
	if err = inmemdb.Seed(db); err != nil {
		t.Fatalf("inmemdb.Seed() failed: %v", err)
	}

	logger := &testutil.Logger{}
	conf := &core.Config{AppName: "Crestview Admin", Env: "TEST", TestMode: true}

	server := NewServer(ServerDeps{
		Conf:         conf,
		Logger:       logger,
		DashboardSvc: dashboard.NewService(inmemdb.NewDashboardRepository(db), logger),
		StudentSvc:   student.NewService(inmemdb.NewStudentRepository(db)),
		ParentSvc:    parent.NewService(inmemdb.NewParentRepository(db)),
		TeacherSvc:   teacher.NewService(inmemdb.NewTeacherRepository(db)),
		InvoiceSvc:   invoice.NewService(inmemdb.NewInvoiceRepository(db)),
		Settings:     settings.NewStore(),
	})
	return server, db, logger
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func marshalObj(t *testing.T, obj interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshalObj() failed: %v", err)
	}
	return data
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decoding response body: %v; body = %s", err, rec.Body.String())
	}
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	return assert.ObjectsAreEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
