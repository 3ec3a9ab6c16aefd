package http

import (
	"bytes"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-guard/internal/config"
	"github.com/MKhiriev/go-auth-guard/internal/logger"
	"github.com/MKhiriev/go-auth-guard/internal/mock"
	"github.com/MKhiriev/go-auth-guard/internal/service"
	"github.com/MKhiriev/go-auth-guard/internal/validators"
	"github.com/MKhiriev/go-auth-guard/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testAppConfig = config.App{
	TokenSignKey:     "test-sign-key",
	TokenIssuer:      "test-issuer",
	TokenDuration:    time.Minute,
	PasswordHashCost: bcrypt.MinCost,
	Version:          "1.2.3",
}

// testHandler is a Handler with a real credential service and a mocked
// account service.
type testHandler struct {
	*Handler
	credentials service.CredentialService
	authService *mock.MockAuthService
	logs        *bytes.Buffer
}

func newTestHandler(t *testing.T) *testHandler {
	t.Helper()
	ctrl := gomock.NewController(t)

	logs := new(bytes.Buffer)
	log := logger.New(logs, "test")

	credentials := service.NewCredentialService(testAppConfig, log)
	authService := mock.NewMockAuthService(ctrl)
	appInfo, err := service.NewAppInfoService(testAppConfig, log)
	require.NoError(t, err)

	h := NewHandler(&service.Services{
		CredentialService: credentials,
		AuthService:       authService,
		AppInfoService:    appInfo,
	}, validators.NewRequestValidator(), log)

	return &testHandler{
		Handler:     h,
		credentials: credentials,
		authService: authService,
		logs:        logs,
	}
}

func (th *testHandler) token(t *testing.T, userID string) string {
	t.Helper()
	token, err := th.credentials.GenerateToken(t.Context(), models.TokenPayload{UserID: userID})
	require.NoError(t, err)
	return token
}

// okHandler records that it was reached and answers 200.
type okHandler struct {
	called  bool
	request *http.Request
}

func (o *okHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	o.called = true
	o.request = r
	w.WriteHeader(http.StatusOK)
}
