package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kedeea/kedeea-consent-api/src/dtos"
	"github.com/kedeea/kedeea-consent-api/src/models"
	"github.com/kedeea/kedeea-consent-api/src/services"
	"github.com/kedeea/kedeea-consent-api/src/services/mocks"
)

func newConsentTestRouter(t *testing.T, store services.ConsentStore, exposeErrors bool) (*gin.Engine, *ConsentController) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	guard, err := services.NewAccessGuard("0000", "")
	require.NoError(t, err)

	controller := NewConsentController(store, guard, exposeErrors)
	controller.today = func() models.Date {
		d, _ := models.ParseDate("2026-10-17")
		return d
	}

	router := gin.New()
	router.POST("/api/consent", controller.CreateConsent)
	return router, controller
}

func postConsent(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/consent", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeValidation(t *testing.T, w *httptest.ResponseRecorder) dtos.ValidationErrorResponse {
	t.Helper()
	var resp dtos.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Detail)
	return resp
}

func TestCreateConsentStoresTrimmedSubmission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockConsentStore(ctrl)
	store.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.ParticipantModel, c *models.ConsentModel) (string, error) {
			assert.Equal(t, "Ana", p.FirstName)
			assert.Equal(t, "Popescu", p.LastName)
			assert.Nil(t, p.Email)
			assert.True(t, c.Physio)
			assert.False(t, c.Ergo)
			assert.False(t, c.VideoCapture)
			assert.Equal(t, "2026-10-17", c.SignedAt.String())
			return "17", nil
		})

	router, _ := newConsentTestRouter(t, store, false)
	w := postConsent(router, `{"access_code":"0000","first_name":" Ana ","last_name":"Popescu","physio":true}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","participant_id":"17"}`, w.Body.String())
}

func TestCreateConsentKeepsSuppliedSignedAt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockConsentStore(ctrl)
	store.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.ParticipantModel, c *models.ConsentModel) (string, error) {
			assert.Equal(t, "2025-02-14", c.SignedAt.String())
			return "1", nil
		})

	router, _ := newConsentTestRouter(t, store, false)
	w := postConsent(router, `{"access_code":"0000","first_name":"Ana","last_name":"Popescu","signed_at":"2025-02-14"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateConsentRejectsWrongAccessCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockConsentStore(ctrl)
	store.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	router, _ := newConsentTestRouter(t, store, false)

	for _, code := range []string{`"1234"`, `""`, `"0000 "`} {
		w := postConsent(router, `{"access_code":`+code+`,"first_name":"Ana","last_name":"Popescu"}`)
		assert.Equal(t, http.StatusForbidden, w.Code, code)
		assert.JSONEq(t, `{"detail":"Invalid access code"}`, w.Body.String())
	}
}

func TestCreateConsentValidationErrors(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		loc   []string
		error string
	}{
		{"missing access code", `{"first_name":"Ana","last_name":"Popescu"}`, []string{"body", "access_code"}, "value_error.missing"},
		{"missing first name", `{"access_code":"0000","last_name":"Popescu"}`, []string{"body", "first_name"}, "value_error.missing"},
		{"blank last name", `{"access_code":"0000","first_name":"Ana","last_name":"   "}`, []string{"body", "last_name"}, "value_error.blank"},
		{"invalid email", `{"access_code":"0000","first_name":"Ana","last_name":"Popescu","email":"not-an-email"}`, []string{"body", "email"}, "value_error.email"},
		{"non integer age", `{"access_code":"0000","first_name":"Ana","last_name":"Popescu","age":"ten"}`, []string{"body", "age"}, "type_error.int"},
		{"fractional age", `{"access_code":"0000","first_name":"Ana","last_name":"Popescu","age":1.0}`, []string{"body", "age"}, "type_error.int"},
		{"malformed date", `{"access_code":"0000","first_name":"Ana","last_name":"Popescu","signed_at":"17-10-2026"}`, []string{"body", "signed_at"}, "value_error.date"},
		{"not json", `access_code=0000`, []string{"body"}, "value_error.jsondecode"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mocks.NewMockConsentStore(ctrl)
			store.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			router, _ := newConsentTestRouter(t, store, false)
			w := postConsent(router, tc.body)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			resp := decodeValidation(t, w)
			assert.Equal(t, tc.loc, resp.Detail[0].Loc)
			assert.Equal(t, tc.error, resp.Detail[0].Type)
		})
	}
}

func TestCreateConsentValidationRunsBeforeAccessCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockConsentStore(ctrl)
	router, _ := newConsentTestRouter(t, store, false)

	w := postConsent(router, `{"access_code":"wrong","first_name":"Ana","last_name":"Popescu","email":"nope"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreateConsentHidesStoreErrorByDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockConsentStore(ctrl)
	store.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", &services.PersistenceError{Op: "postgres submit", Err: errors.New("connection refused")})

	router, _ := newConsentTestRouter(t, store, false)
	w := postConsent(router, `{"access_code":"0000","first_name":"Ana","last_name":"Popescu"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"Could not save consent"}`, w.Body.String())
}

func TestCreateConsentExposesStoreErrorInDebug(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockConsentStore(ctrl)
	store.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", &services.PersistenceError{Op: "sqlite submit", Err: errors.New("database is locked")})

	router, _ := newConsentTestRouter(t, store, true)
	w := postConsent(router, `{"access_code":"0000","first_name":"Ana","last_name":"Popescu"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"database is locked"}`, w.Body.String())
}
