package auth_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"cakeshop/internal/domain/model"
	"cakeshop/internal/repository"
	"cakeshop/internal/usecase"
	auth "cakeshop/internal/usecase/auth_usecase"
	"cakeshop/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =====================
// Mock: UserRepository
// =====================

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

// 平文に"hashed:"を付けるだけ（bcryptは遅いのでunitでは使わない）
type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

type fakeVerifier struct{}

func (fakeVerifier) Verify(plain string, hashed string) bool { return hashed == "hashed:"+plain }

type MockPasswordVerifier struct {
	mock.Mock
}

func (m *MockPasswordVerifier) Verify(plain string, hashed string) bool {
	return m.Called(plain, hashed).Bool(0)
}

type seqIDGen struct{ n int }

func (g *seqIDGen) NewID() string {
	g.n++
	return fmt.Sprintf("user-%d", g.n)
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

const testSecret = "test_secret"

var testNow = time.Now().UTC().Truncate(time.Second)

func tokens() *auth.JWTTokenService {
	return auth.NewJWTTokenService(testSecret, 7*24*time.Hour)
}

func assertCode(t *testing.T, err error, code usecase.Code) {
	t.Helper()
	ue, ok := usecase.AsError(err)
	if assert.True(t, ok, "expected *usecase.Error, got %v", err) {
		assert.Equal(t, code, ue.Code)
	}
}

// =====================
// Register
// =====================

func TestRegister_Success(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	uc := auth.NewRegisterUserUsecase(repo, validator.NewAuthValidator(), fakeHasher{}, tokens(), &seqIDGen{}, fixedClock{t: testNow})

	phone := "  "
	out, err := uc.Execute(context.Background(), auth.RegisterUserInput{
		Email:    " New@Example.com ",
		Password: "password123",
		Name:     "New User",
		Phone:    &phone,
	})
	require.NoError(t, err)

	assert.Equal(t, "user-1", out.User.ID)
	assert.Equal(t, "new@example.com", out.User.Email)
	assert.Equal(t, model.RoleUser, out.User.Role)
	assert.Nil(t, out.User.Phone)
	assert.Empty(t, out.User.PasswordHash)
	assert.Equal(t, testNow.Add(7*24*time.Hour).Unix(), out.ExpiresAt)

	// 保存されるのはハッシュ
	saved := repo.Calls[1].Arguments.Get(1).(*model.User)
	assert.Equal(t, "hashed:password123", saved.PasswordHash)

	userID, err := tokens().Verify(out.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByEmail", mock.Anything, "demo@cakeshop.com").Return(&model.User{ID: "u1"}, nil)

	uc := auth.NewRegisterUserUsecase(repo, validator.NewAuthValidator(), fakeHasher{}, tokens(), &seqIDGen{}, fixedClock{t: testNow})

	_, err := uc.Execute(context.Background(), auth.RegisterUserInput{
		Email:    "DEMO@cakeshop.com",
		Password: "password123",
		Name:     "Someone",
	})
	assertCode(t, err, usecase.CodeDuplicateIdentity)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_DuplicateOnInsertRace(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByEmail", mock.Anything, "race@example.com").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

	uc := auth.NewRegisterUserUsecase(repo, validator.NewAuthValidator(), fakeHasher{}, tokens(), &seqIDGen{}, fixedClock{t: testNow})

	_, err := uc.Execute(context.Background(), auth.RegisterUserInput{
		Email:    "race@example.com",
		Password: "password123",
		Name:     "Racer",
	})
	assertCode(t, err, usecase.CodeDuplicateIdentity)
}

func TestRegister_ValidationError(t *testing.T) {
	repo := new(MockUserRepository)
	uc := auth.NewRegisterUserUsecase(repo, validator.NewAuthValidator(), fakeHasher{}, tokens(), &seqIDGen{}, fixedClock{t: testNow})

	_, err := uc.Execute(context.Background(), auth.RegisterUserInput{
		Email:    "not-an-email",
		Password: "password123",
		Name:     "X",
	})
	assertCode(t, err, usecase.CodeValidation)
	repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestRegister_StorageError(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByEmail", mock.Anything, "a@example.com").Return(nil, errors.New("connection refused"))

	uc := auth.NewRegisterUserUsecase(repo, validator.NewAuthValidator(), fakeHasher{}, tokens(), &seqIDGen{}, fixedClock{t: testNow})

	_, err := uc.Execute(context.Background(), auth.RegisterUserInput{
		Email:    "a@example.com",
		Password: "password123",
		Name:     "A",
	})
	assertCode(t, err, usecase.CodeStorageUnavailable)
	assert.NotContains(t, err.Error(), "connection refused")
}

// =====================
// Login
// =====================

func TestLogin_Success(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByEmail", mock.Anything, "demo@cakeshop.com").Return(&model.User{
		ID:           "u1",
		Email:        "demo@cakeshop.com",
		PasswordHash: "hashed:password123",
		Role:         model.RoleUser,
	}, nil)

	uc := auth.NewLoginUsecase(repo, validator.NewAuthValidator(), fakeVerifier{}, tokens(), fixedClock{t: testNow})

	out, err := uc.Execute(context.Background(), auth.LoginInput{Email: "demo@cakeshop.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "u1", out.User.ID)
	assert.Empty(t, out.User.PasswordHash)
	assert.NotEmpty(t, out.Token)
}

func TestLogin_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByEmail", mock.Anything, "nobody@cakeshop.com").Return(nil, nil)
	repo.On("FindByEmail", mock.Anything, "demo@cakeshop.com").Return(&model.User{
		ID:           "u1",
		PasswordHash: "hashed:password123",
	}, nil)

	uc := auth.NewLoginUsecase(repo, validator.NewAuthValidator(), fakeVerifier{}, tokens(), fixedClock{t: testNow})

	_, errUnknown := uc.Execute(context.Background(), auth.LoginInput{Email: "nobody@cakeshop.com", Password: "password123"})
	_, errWrong := uc.Execute(context.Background(), auth.LoginInput{Email: "demo@cakeshop.com", Password: "wrong"})

	assertCode(t, errUnknown, usecase.CodeInvalidCredentials)
	assertCode(t, errWrong, usecase.CodeInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestLogin_UnknownEmailStillComparesPassword(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByEmail", mock.Anything, "nobody@cakeshop.com").Return(nil, nil)

	verifier := new(MockPasswordVerifier)
	verifier.On("Verify", "password123", mock.MatchedBy(func(h string) bool {
		return strings.HasPrefix(h, "$2a$")
	})).Return(true).Once()

	uc := auth.NewLoginUsecase(repo, validator.NewAuthValidator(), verifier, tokens(), fixedClock{t: testNow})

	// 照合結果がtrueでもユーザーがいなければ失敗
	_, err := uc.Execute(context.Background(), auth.LoginInput{Email: "nobody@cakeshop.com", Password: "password123"})
	assertCode(t, err, usecase.CodeInvalidCredentials)
	verifier.AssertExpectations(t)
}

func TestLogin_RequiresFields(t *testing.T) {
	repo := new(MockUserRepository)
	uc := auth.NewLoginUsecase(repo, validator.NewAuthValidator(), fakeVerifier{}, tokens(), fixedClock{t: testNow})

	_, err := uc.Execute(context.Background(), auth.LoginInput{Email: "", Password: "x"})
	assertCode(t, err, usecase.CodeValidation)
}

// =====================
// JWT / Session
// =====================

func TestJWT_Expired(t *testing.T) {
	svc := auth.NewJWTTokenService(testSecret, time.Hour)

	tok, _, err := svc.Issue("u1", time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = svc.Verify(tok)
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
}

func TestJWT_WrongSecret(t *testing.T) {
	tok, _, err := auth.NewJWTTokenService("other", time.Hour).Issue("u1", time.Now())
	require.NoError(t, err)

	_, err = tokens().Verify(tok)
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)

	_, err = tokens().Verify("garbage")
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
}

func TestSession_Resolve(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, "u1").Return(&model.User{ID: "u1", PasswordHash: "hashed:x", Role: model.RoleAdmin}, nil)
	repo.On("FindByID", mock.Anything, "gone").Return(nil, nil)

	svc := tokens()
	uc := auth.NewSessionUsecase(repo, svc)

	tok, _, err := svc.Issue("u1", time.Now())
	require.NoError(t, err)

	u, err := uc.Resolve(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	assert.True(t, u.IsAdmin())
	assert.Empty(t, u.PasswordHash)

	// 削除済みユーザー
	tok, _, err = svc.Issue("gone", time.Now())
	require.NoError(t, err)
	_, err = uc.Resolve(context.Background(), tok)
	assertCode(t, err, usecase.CodeInvalidToken)

	_, err = uc.Resolve(context.Background(), "")
	assertCode(t, err, usecase.CodeInvalidToken)

	_, err = uc.Resolve(context.Background(), "abc.def.ghi")
	assertCode(t, err, usecase.CodeInvalidToken)
}

func TestBcrypt_HashAndVerify(t *testing.T) {
	h := auth.NewBcryptPasswordHasher(4)
	hashed, err := h.Hash("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hashed)

	v := auth.NewBcryptPasswordVerifier()
	assert.True(t, v.Verify("password123", hashed))
	assert.False(t, v.Verify("password124", hashed))
}
