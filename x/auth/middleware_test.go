package auth

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/webgrove/gatecrest/core"
	mock_core "github.com/webgrove/gatecrest/core/mock"
	"github.com/webgrove/gatecrest/x/jwt"
)

const (
	AdminPriv    = "3fcfac6c211b743975de2d7b3f622c12694b8125daf4013562c5a1aefa3253a5"
	StrangerPriv = "1ca30329e8d35217b2328bacfc21c5e3d762713edab0252eead1f4c1ac0b4d81"
)

func adminToken(t *testing.T, privatekey string, audience string) string {
	issuer, err := core.DIDKeyFromPrivateKey(privatekey)
	assert.NoError(t, err)

	now := time.Now().Unix()
	token, err := jwt.Create(jwt.Claims{
		Issuer:         issuer,
		Audience:       audience,
		IssuedAt:       strconv.FormatInt(now, 10),
		ExpirationTime: strconv.FormatInt(now+600, 10),
	}, privatekey)
	assert.NoError(t, err)

	return token
}

func TestRestrict(t *testing.T) {

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminDID, err := core.DIDKeyFromPrivateKey(AdminPriv)
	assert.NoError(t, err)

	svc := NewService(
		mock_core.NewMockPolicyService(ctrl),
		mock_core.NewMockEvaluatorService(ctrl),
		mock_core.NewMockIssuerService(ctrl),
		core.Config{
			FQDN:   "gate.example.com",
			Admins: []string{adminDID},
		},
	)

	e := echo.New()
	handler := svc.Restrict(func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get(core.AdminIdCtxKey).(string))
	})

	invoke := func(authorization string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if authorization != "" {
			req.Header.Set("authorization", authorization)
		}
		rec := httptest.NewRecorder()
		err := handler(e.NewContext(req, rec))
		assert.NoError(t, err)
		return rec
	}

	// Test1. valid admin token passes and the admin identity is set
	rec := invoke("Bearer " + adminToken(t, AdminPriv, "gate.example.com"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, adminDID, rec.Body.String())

	// Test2. no header
	rec = invoke("")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Test3. wrong scheme
	rec = invoke("Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Test4. garbage token
	rec = invoke("Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Test5. token for another audience
	rec = invoke("Bearer " + adminToken(t, AdminPriv, "other.example.com"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Test6. valid token from a non-admin identity
	rec = invoke("Bearer " + adminToken(t, StrangerPriv, "gate.example.com"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
