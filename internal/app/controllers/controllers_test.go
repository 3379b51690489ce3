package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/alumnet/internal/app/models"
	"github.com/yigit/alumnet/internal/app/models/dto"
	"github.com/yigit/alumnet/internal/middleware"
	"github.com/yigit/alumnet/internal/pkg/apperrors"
	"github.com/yigit/alumnet/internal/pkg/auth"
	"github.com/yigit/alumnet/internal/pkg/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testSession = session.New("sess-1", 7, session.RoleStudent)

// withSession stands in for the session middleware
func withSession(c *gin.Context) {
	c.Set("session", testSession)
	c.Next()
}

func testCookie() *middleware.SessionCookie {
	return &middleware.SessionCookie{
		Name: "alumnet_session",
		Tokens: auth.NewSessionTokenService(auth.TokenConfig{
			SecretKey:   "test-secret",
			TTL:         time.Hour,
			TokenIssuer: "alumnet",
		}),
	}
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.APIResponse {
	t.Helper()
	var resp dto.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v (%s)", err, w.Body.String())
	}
	return resp
}

type fakeAuthService struct {
	registerID  int64
	registerErr error
	loginErr    error
	loggedOut   []string
}

func (f *fakeAuthService) Register(_ context.Context, _ *dto.RegisterRequest) (int64, error) {
	return f.registerID, f.registerErr
}

func (f *fakeAuthService) Login(_ context.Context, req *dto.LoginRequest) (session.Session, error) {
	if f.loginErr != nil {
		return session.Session{}, f.loginErr
	}
	return session.New("sess-new", 3, session.RoleAlumni), nil
}

func (f *fakeAuthService) Logout(_ context.Context, id string) error {
	f.loggedOut = append(f.loggedOut, id)
	return nil
}

func (f *fakeAuthService) SessionTTL() time.Duration { return time.Hour }

func newAuthRouter(svc *fakeAuthService) *gin.Engine {
	ctrl := NewAuthController(svc, testCookie(), zerolog.Nop())
	r := gin.New()
	r.POST("/api/auth/register", ctrl.Register)
	r.POST("/api/auth/login", ctrl.Login)
	r.POST("/api/auth/logout", ctrl.Logout)
	r.GET("/logout", ctrl.LogoutRedirect)
	return r
}

func TestRegisterCreated(t *testing.T) {
	r := newAuthRouter(&fakeAuthService{registerID: 11})

	body := `{"username":"jdoe","email":"jdoe@example.com","password":"secret","role":"student"}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body)))

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", w.Code, w.Body.String())
	}
	resp := decodeResponse(t, w)
	data, _ := resp.Data.(map[string]interface{})
	if data["person_id"] != float64(11) {
		t.Errorf("data = %#v", resp.Data)
	}
}

func TestRegisterMalformedBody(t *testing.T) {
	r := newAuthRouter(&fakeAuthService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{")))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	r := newAuthRouter(&fakeAuthService{registerErr: apperrors.ErrIdentityTaken})

	body := `{"username":"jdoe","email":"jdoe@example.com","password":"secret","role":"student"}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body)))

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
}

func TestLoginSetsSessionCookie(t *testing.T) {
	r := newAuthRouter(&fakeAuthService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"identifier":"jdoe","password":"secret"}`)))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "alumnet_session" {
		t.Fatalf("cookies = %#v", cookies)
	}
	if id, err := testCookie().Tokens.Parse(cookies[0].Value); err != nil || id != "sess-new" {
		t.Errorf("cookie carries %q, %v", id, err)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	r := newAuthRouter(&fakeAuthService{loginErr: apperrors.ErrInvalidCredentials})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"identifier":"jdoe","password":"wrong"}`)))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if len(w.Result().Cookies()) != 0 {
		t.Error("no cookie expected on failed login")
	}
}

func TestLogoutRedirectEndsSession(t *testing.T) {
	svc := &fakeAuthService{}
	r := newAuthRouter(svc)

	token, err := testCookie().Tokens.Sign("sess-1")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: "alumnet_session", Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound || w.Header().Get("Location") != "/" {
		t.Fatalf("status = %d, location = %q", w.Code, w.Header().Get("Location"))
	}
	if len(svc.loggedOut) != 1 || svc.loggedOut[0] != "sess-1" {
		t.Errorf("logged out = %v", svc.loggedOut)
	}
}

func TestLogoutWithoutCookie(t *testing.T) {
	svc := &fakeAuthService{}
	r := newAuthRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if len(svc.loggedOut) != 1 || svc.loggedOut[0] != "" {
		t.Errorf("logged out = %v", svc.loggedOut)
	}
}

type fakeProfileService struct {
	gotMode string
	saved   *dto.PersonalInfoRequest
	err     error
}

func (f *fakeProfileService) GetProfile(_ context.Context, sess session.Session, mode string) (*dto.ProfileResponse, error) {
	f.gotMode = mode
	if f.err != nil {
		return nil, f.err
	}
	return &dto.ProfileResponse{
		Mode:    mode,
		Profile: &models.Profile{PersonID: sess.PersonID(), Role: string(sess.Role())},
	}, nil
}

func (f *fakeProfileService) SavePersonalInfo(_ context.Context, _ session.Session, req *dto.PersonalInfoRequest) error {
	f.saved = req
	return f.err
}

func TestGetProfileDefaultsToViewMode(t *testing.T) {
	svc := &fakeProfileService{}
	ctrl := NewProfileController(svc)
	r := gin.New()
	r.GET("/api/profile", withSession, ctrl.GetProfile)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/profile", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if svc.gotMode != dto.ProfileModeView {
		t.Errorf("mode = %q, want %q", svc.gotMode, dto.ProfileModeView)
	}
}

func TestGetProfileWithoutSession(t *testing.T) {
	ctrl := NewProfileController(&fakeProfileService{})
	r := gin.New()
	r.GET("/api/profile", ctrl.GetProfile)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/profile?mode=edit", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestSavePersonalInfo(t *testing.T) {
	svc := &fakeProfileService{}
	ctrl := NewProfileController(svc)
	r := gin.New()
	r.POST("/profile/personal/save", withSession, ctrl.SavePersonalInfo)

	body := `{"first_name":"Jane","last_name":"Doe","home_country":"TR"}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/profile/personal/save", strings.NewReader(body)))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
	}
	if svc.saved == nil || svc.saved.FirstName != "Jane" {
		t.Errorf("saved = %#v", svc.saved)
	}
}

type fakeResourceService struct {
	decoded   map[string]interface{}
	addErr    error
	deleteErr error
	deleted   int64
}

func (f *fakeResourceService) Add(_ context.Context, _ session.Session, kind string, decode func(payload interface{}) error) (int64, error) {
	if f.addErr != nil {
		return 0, f.addErr
	}
	f.decoded = map[string]interface{}{}
	if err := decode(&f.decoded); err != nil {
		return 0, apperrors.NewValidationError(err.Error())
	}
	return 99, nil
}

func (f *fakeResourceService) Delete(_ context.Context, _ session.Session, _ string, key int64) error {
	f.deleted = key
	return f.deleteErr
}

func newResourceRouter(svc *fakeResourceService) *gin.Engine {
	ctrl := NewResourceController(svc)
	r := gin.New()
	r.POST("/profile/:kind/add", withSession, ctrl.Add)
	r.DELETE("/profile/:kind/:id", withSession, ctrl.Delete)
	return r
}

func TestResourceAddReturnsID(t *testing.T) {
	svc := &fakeResourceService{}
	r := newResourceRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/profile/skill/add", strings.NewReader(`{"skill_name":"Go"}`)))

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", w.Code, w.Body.String())
	}
	if svc.decoded["skill_name"] != "Go" {
		t.Errorf("decoded = %#v", svc.decoded)
	}
	data, _ := decodeResponse(t, w).Data.(map[string]interface{})
	if data["id"] != float64(99) {
		t.Errorf("data = %#v", data)
	}
}

func TestResourceAddForbiddenForRole(t *testing.T) {
	r := newResourceRouter(&fakeResourceService{addErr: apperrors.ErrAlumniOnly})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/profile/career/add", strings.NewReader(`{}`)))

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestResourceDeleteRejectsMalformedID(t *testing.T) {
	svc := &fakeResourceService{}
	r := newResourceRouter(svc)

	for _, id := range []string{"abc", "0", "-4"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/profile/education/"+id, nil))
		if w.Code != http.StatusBadRequest {
			t.Errorf("id %q: status = %d, want 400", id, w.Code)
		}
	}
	if svc.deleted != 0 {
		t.Error("service must not be called for malformed ids")
	}
}

func TestResourceDeleteNotOwned(t *testing.T) {
	svc := &fakeResourceService{deleteErr: apperrors.ErrNotOwner}
	r := newResourceRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/profile/education/15", nil))

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	if svc.deleted != 15 {
		t.Errorf("deleted key = %d, want 15", svc.deleted)
	}
	if msg := decodeResponse(t, w).Error.Message; msg != "unauthorized" {
		t.Errorf("message = %q", msg)
	}
}

func TestHealth(t *testing.T) {
	up := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("dial tcp: refused") }

	tests := []struct {
		name       string
		database   PingFunc
		redis      PingFunc
		wantStatus int
	}{
		{"all up", up, up, http.StatusOK},
		{"database down", down, up, http.StatusServiceUnavailable},
		{"redis down", up, down, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/api/health", NewHealthController(tt.database, tt.redis).Health)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
