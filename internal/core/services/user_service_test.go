package services_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/videotube/internal/apperrors"
	"github.com/SscSPs/videotube/internal/core/domain"
	portssvc "github.com/SscSPs/videotube/internal/core/ports/services"
	"github.com/SscSPs/videotube/internal/core/services"
	"github.com/SscSPs/videotube/internal/dto"
	"github.com/SscSPs/videotube/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var (
	pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}
	mp4Header = []byte{0, 0, 0, 0x18, 'f', 't', 'y', 'p', 'i', 's', 'o', 'm', 0, 0, 2, 0, 'i', 's', 'o', 'm', 'i', 's', 'o', '2'}
)

func writeTemp(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	mockMedia    *MockMediaStore
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockMedia = new(MockMediaStore)
	suite.service = services.NewUserService(suite.mockUserRepo, suite.mockMedia)
}

func registerRequest() dto.RegisterUserRequest {
	return dto.RegisterUserRequest{
		FullName: "Alice Liddell",
		Email:    "A@X.com",
		Username: "Alice",
		Password: "Secret123",
	}
}

// --- Register Tests ---
func (suite *UserServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	req := registerRequest()

	suite.mockUserRepo.On("FindUserByUsernameOrEmail", ctx, "alice", "a@x.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "alice" && u.Email == "a@x.com" && u.PasswordHash != "" && u.PasswordHash != req.Password
	})).Return(nil).Once()

	user, err := suite.service.Register(ctx, req, dto.RegisterFiles{})

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.NotEqual(req.Password, user.PasswordHash)
	suite.True(user.VerifyPassword(req.Password))
	suite.Nil(user.RefreshTokenHash)
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockMedia.AssertNotCalled(suite.T(), "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestRegister_WithAvatar() {
	ctx := context.Background()
	avatarPath := writeTemp(suite.T(), "me.png", pngHeader)

	suite.mockUserRepo.On("FindUserByUsernameOrEmail", ctx, "alice", "a@x.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockMedia.On("Upload", ctx, avatarPath, domain.AssetAvatar).
		Return(&domain.UploadedAsset{URL: "https://cdn.test/avatars/me.png"}, nil).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()

	user, err := suite.service.Register(ctx, registerRequest(), dto.RegisterFiles{AvatarPath: avatarPath})

	suite.Require().NoError(err)
	suite.Equal("https://cdn.test/avatars/me.png", user.Avatar)
	suite.mockMedia.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_AvatarNotAnImage() {
	ctx := context.Background()
	avatarPath := writeTemp(suite.T(), "me.png", []byte("not an image"))
	suite.mockUserRepo.On("FindUserByUsernameOrEmail", ctx, "alice", "a@x.com").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Register(ctx, registerRequest(), dto.RegisterFiles{AvatarPath: avatarPath})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestRegister_BlankFields() {
	req := registerRequest()
	req.FullName = "   "

	_, err := suite.service.Register(context.Background(), req, dto.RegisterFiles{})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByUsernameOrEmail", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestRegister_InvalidEmail() {
	req := registerRequest()
	req.Email = "not-an-email"

	_, err := suite.service.Register(context.Background(), req, dto.RegisterFiles{})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("Invalid email format", apperrors.PublicMessage(err))
}

func (suite *UserServiceTestSuite) TestRegister_Duplicate() {
	ctx := context.Background()
	existing := testutil.NewUserBuilder().WithUsername("alice").Build()
	suite.mockUserRepo.On("FindUserByUsernameOrEmail", ctx, "alice", "a@x.com").Return(&existing, nil).Once()

	_, err := suite.service.Register(ctx, registerRequest(), dto.RegisterFiles{})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Equal(409, apperrors.HTTPStatus(err))
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateRaceOnSave() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByUsernameOrEmail", ctx, "alice", "a@x.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.Register(ctx, registerRequest(), dto.RegisterFiles{})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestRegister_SaveError() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByUsernameOrEmail", ctx, "alice", "a@x.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(assert.AnError).Once()

	_, err := suite.service.Register(ctx, registerRequest(), dto.RegisterFiles{})

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
	suite.Equal(500, apperrors.HTTPStatus(err))
}

// --- AuthenticateUser Tests ---
func (suite *UserServiceTestSuite) TestAuthenticateUser() {
	ctx := context.Background()
	user := testutil.NewUserBuilder().WithUsername("alice").WithPassword("Secret123").Build()
	suite.mockUserRepo.FindUserByUsernameOrEmailFn = func(_ context.Context, username, email string) (*domain.User, error) {
		if username == "alice" || email == user.Email {
			u := user
			return &u, nil
		}
		return nil, apperrors.ErrNotFound
	}

	got, err := suite.service.AuthenticateUser(ctx, dto.LoginRequest{Username: "ALICE", Password: "Secret123"})
	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)

	_, err = suite.service.AuthenticateUser(ctx, dto.LoginRequest{Email: user.Email, Password: "wrong"})
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	_, err = suite.service.AuthenticateUser(ctx, dto.LoginRequest{Username: "bob", Password: "Secret123"})
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.service.AuthenticateUser(ctx, dto.LoginRequest{Password: "Secret123"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- ChangePassword Tests ---
func (suite *UserServiceTestSuite) TestChangePassword_Success() {
	ctx := context.Background()
	user := testutil.NewUserBuilder().WithPassword("old-pass").Build()
	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(&user, nil).Once()
	suite.mockUserRepo.On("UpdatePassword", ctx, user.UserID, mock.MatchedBy(func(hash string) bool {
		probe := domain.User{PasswordHash: hash}
		return probe.VerifyPassword("new-pass")
	}), mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.ChangePassword(ctx, user.UserID, dto.ChangePasswordRequest{OldPassword: "old-pass", NewPassword: "new-pass"})

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestChangePassword_SameAsOld() {
	err := suite.service.ChangePassword(context.Background(), "u1", dto.ChangePasswordRequest{OldPassword: "same", NewPassword: "same"})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByID", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestChangePassword_WrongOld() {
	ctx := context.Background()
	user := testutil.NewUserBuilder().WithPassword("old-pass").Build()
	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(&user, nil).Once()

	err := suite.service.ChangePassword(ctx, user.UserID, dto.ChangePasswordRequest{OldPassword: "guess", NewPassword: "new-pass"})

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdatePassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- UpdateAccountDetails / images ---
func (suite *UserServiceTestSuite) TestUpdateAccountDetails() {
	ctx := context.Background()
	user := testutil.NewUserBuilder().Build()

	_, err := suite.service.UpdateAccountDetails(ctx, user.UserID, dto.UpdateUserRequest{})
	suite.ErrorIs(err, apperrors.ErrValidation)

	newName := "  Renamed  "
	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(&user, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.FullName == "Renamed" && u.Email == user.Email
	})).Return(nil).Once()

	updated, err := suite.service.UpdateAccountDetails(ctx, user.UserID, dto.UpdateUserRequest{FullName: &newName})
	suite.Require().NoError(err)
	suite.Equal("Renamed", updated.FullName)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateAccountDetails_EmailTaken() {
	ctx := context.Background()
	user := testutil.NewUserBuilder().Build()
	email := "taken@example.com"
	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(&user, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.UpdateAccountDetails(ctx, user.UserID, dto.UpdateUserRequest{Email: &email})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestUpdateAvatar_ReplacesAndDeletesPrevious() {
	ctx := context.Background()
	user := testutil.NewUserBuilder().Build()
	user.Avatar = "https://cdn.test/avatars/old.png"
	path := writeTemp(suite.T(), "new.png", pngHeader)

	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(&user, nil).Once()
	suite.mockMedia.On("Upload", ctx, path, domain.AssetAvatar).Return(&domain.UploadedAsset{URL: "https://cdn.test/avatars/new.png"}, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Avatar == "https://cdn.test/avatars/new.png"
	})).Return(nil).Once()
	suite.mockMedia.On("DeleteByURL", ctx, "https://cdn.test/avatars/old.png", domain.AssetAvatar).Return(assert.AnError).Once()

	updated, err := suite.service.UpdateAvatar(ctx, user.UserID, path)

	suite.Require().NoError(err, "a failed cleanup of the old asset is only logged")
	suite.Equal("https://cdn.test/avatars/new.png", updated.Avatar)
	suite.mockMedia.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateCoverImage_MissingFile() {
	_, err := suite.service.UpdateCoverImage(context.Background(), "u1", "")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- Google sign-in ---
func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser() {
	ctx := context.Background()
	existing := testutil.NewUserBuilder().WithEmail("g@example.com").Build()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "g@example.com").Return(&existing, nil).Once()

	got, err := suite.service.FindOrCreateGoogleUser(ctx, domain.GoogleUserInfo{Email: "G@example.com"})
	suite.Require().NoError(err)
	suite.Equal(existing.UserID, got.UserID)

	suite.mockUserRepo.On("FindUserByEmail", ctx, "new.person@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "new.person@example.com" && u.PasswordHash == "" && u.FullName == "New Person"
	})).Return(nil).Once()

	created, err := suite.service.FindOrCreateGoogleUser(ctx, domain.GoogleUserInfo{Email: "new.person@example.com", Name: "New Person"})
	suite.Require().NoError(err)
	suite.Contains(created.Username, "new.person_")
	suite.False(created.VerifyPassword(""), "google users cannot log in with a password")
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUserByID(ctx, "missing")

	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal("User not found", apperrors.PublicMessage(err))
}

func (suite *UserServiceTestSuite) TestSessionMethodsDelegate() {
	ctx := context.Background()
	exp := time.Now().Add(time.Hour)
	suite.mockUserRepo.On("UpdateRefreshToken", ctx, "u1", "hash", exp).Return(nil).Once()
	suite.mockUserRepo.On("RotateRefreshToken", ctx, "u1", "hash", "next", exp).Return(apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("ClearRefreshToken", ctx, "u1").Return(nil).Once()

	suite.NoError(suite.service.UpdateRefreshToken(ctx, "u1", "hash", exp))
	suite.ErrorIs(suite.service.RotateRefreshToken(ctx, "u1", "hash", "next", exp), apperrors.ErrNotFound)
	suite.NoError(suite.service.ClearRefreshToken(ctx, "u1"))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
