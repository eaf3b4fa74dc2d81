package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/docuvault/go-doc-manager/internal/logger"
	"github.com/docuvault/go-doc-manager/internal/service"
	"github.com/docuvault/go-doc-manager/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	signUpFn         func(ctx context.Context, request models.SignUpRequest) (models.User, error)
	verifyOTPFn      func(ctx context.Context, email string, otp int64) (service.VerifyOTPResult, error)
	forgetPasswordFn func(ctx context.Context, email string) error
	changePasswordFn func(ctx context.Context, request models.ChangePasswordRequest) error
	signInFn         func(ctx context.Context, email, password string) (models.SignInResponse, error)
	updateProfileFn  func(ctx context.Context, userID int64, update models.UpdateProfileRequest) (models.User, error)
	createTokenFn    func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn     func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) SignUp(ctx context.Context, request models.SignUpRequest) (models.User, error) {
	return m.signUpFn(ctx, request)
}

func (m *mockAuthService) VerifyOTP(ctx context.Context, email string, otp int64) (service.VerifyOTPResult, error) {
	return m.verifyOTPFn(ctx, email, otp)
}

func (m *mockAuthService) ForgetPassword(ctx context.Context, email string) error {
	return m.forgetPasswordFn(ctx, email)
}

func (m *mockAuthService) ChangePassword(ctx context.Context, request models.ChangePasswordRequest) error {
	return m.changePasswordFn(ctx, request)
}

func (m *mockAuthService) SignIn(ctx context.Context, email, password string) (models.SignInResponse, error) {
	return m.signInFn(ctx, email, password)
}

func (m *mockAuthService) UpdateProfile(ctx context.Context, userID int64, update models.UpdateProfileRequest) (models.User, error) {
	return m.updateProfileFn(ctx, userID, update)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockDocumentService implements service.DocumentService for unit tests.
type mockDocumentService struct {
	createFn       func(ctx context.Context, ownerID int64, request models.CreateDocumentRequest) (models.Document, error)
	editFn         func(ctx context.Context, id int64, request models.EditDocumentRequest) (models.Document, error)
	getFn          func(ctx context.Context, id int64) (models.Document, error)
	updateStatusFn func(ctx context.Context, id int64, status string) (models.Document, error)
	deleteFn       func(ctx context.Context, id int64) error
	listFn         func(ctx context.Context, page, limit int) (models.DocumentPage, error)
}

func (m *mockDocumentService) Create(ctx context.Context, ownerID int64, request models.CreateDocumentRequest) (models.Document, error) {
	return m.createFn(ctx, ownerID, request)
}

func (m *mockDocumentService) Edit(ctx context.Context, id int64, request models.EditDocumentRequest) (models.Document, error) {
	return m.editFn(ctx, id, request)
}

func (m *mockDocumentService) Get(ctx context.Context, id int64) (models.Document, error) {
	return m.getFn(ctx, id)
}

func (m *mockDocumentService) UpdateStatus(ctx context.Context, id int64, status string) (models.Document, error) {
	return m.updateStatusFn(ctx, id, status)
}

func (m *mockDocumentService) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func (m *mockDocumentService) List(ctx context.Context, page, limit int) (models.DocumentPage, error) {
	return m.listFn(ctx, page, limit)
}

// mockSearchService implements service.SearchService for unit tests.
type mockSearchService struct {
	fetchDocumentsFn func(ctx context.Context, page, limit int) (json.RawMessage, error)
}

func (m *mockSearchService) FetchDocuments(ctx context.Context, page, limit int) (json.RawMessage, error) {
	return m.fetchDocumentsFn(ctx, page, limit)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// stubParseToken resolves the fixed bearer tokens used across route-level
// tests to caller identities.
func stubParseToken(_ context.Context, tokenString string) (models.Token, error) {
	identities := map[string]models.Token{
		"admin-token":  {UserID: 1, Claims: models.Claims{Email: "admin@example.com", Role: models.RoleAdmin}},
		"editor-token": {UserID: 2, Claims: models.Claims{Email: "editor@example.com", Role: models.RoleEditor}},
		"viewer-token": {UserID: 3, Claims: models.Claims{Email: "viewer@example.com", Role: models.RoleViewer}},
	}
	token, ok := identities[tokenString]
	if !ok {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return token, nil
}

// newTestHandler builds a Handler around the given mocks. Nil mocks are
// replaced by an auth mock that only knows the stub tokens, so middleware
// keeps working in document-centric tests.
func newTestHandler(auth service.AuthService, documents service.DocumentService, search service.SearchService) *Handler {
	if auth == nil {
		auth = &mockAuthService{parseTokenFn: stubParseToken}
	}
	return NewHandler(&service.Services{
		AuthService:     auth,
		DocumentService: documents,
		SearchService:   search,
	}, logger.Nop())
}

// decodeEnvelope parses the uniform response envelope from a recorder.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) models.Response {
	t.Helper()
	var envelope models.Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	return envelope
}
