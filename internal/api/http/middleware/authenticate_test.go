package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/avoronov/notepad-server/internal/api/http/appctx"
	"github.com/avoronov/notepad-server/internal/apierrors"
	"github.com/avoronov/notepad-server/internal/mocks"
	"github.com/avoronov/notepad-server/internal/model"
	"github.com/avoronov/notepad-server/internal/testutil"
)

func TestAuthenticate_Handle(t *testing.T) {
	t.Parallel()

	user := model.User{ID: 7, Email: "alice@example.com"}

	tests := []struct {
		name        string
		authHeader  string
		serviceUser model.User
		serviceErr  error
		wantStatus  int
		wantNext    bool
	}{
		{
			name:        "valid bearer token",
			authHeader:  "Bearer good-token",
			serviceUser: user,
			wantStatus:  http.StatusOK,
			wantNext:    true,
		},
		{
			name:       "missing header",
			authHeader: "",
			serviceErr: apierrors.NewErrUnauthorized(errors.New("missing token")),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			authHeader: "Basic dXNlcjpwYXNz",
			serviceErr: apierrors.NewErrUnauthorized(errors.New("missing token")),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "rejected token",
			authHeader: "Bearer bad-token",
			serviceErr: apierrors.NewErrUnauthorized(errors.New("token invalid")),
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			service := &mocks.AuthService{}
			service.On("Authenticate", mock.Anything, mock.Anything).
				Return(tt.serviceUser, tt.serviceErr)

			contextManager := appctx.NewManager()
			mw := NewAuthenticate(service, contextManager, testutil.MakeNoopLogger())

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				got, ok := contextManager.GetUserFromContext(r.Context())
				require.True(t, ok)
				assert.Equal(t, user, got)
			})

			req := httptest.NewRequest(http.MethodGet, "/notes", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			mw.Handle(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
				assert.JSONEq(t, `{"error":"could not validate credentials"}`, rec.Body.String())
			}
		})
	}
}

func TestBearerToken(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("bearer abc"))
	assert.Empty(t, bearerToken(""))
	assert.Empty(t, bearerToken("Bearer "))
	assert.Empty(t, bearerToken("Token abc"))
}
