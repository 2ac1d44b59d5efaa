package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/videotube/internal/apperrors"
	"github.com/SscSPs/videotube/internal/core/domain"
	portsrepo "github.com/SscSPs/videotube/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/videotube/internal/core/ports/services"
	"github.com/SscSPs/videotube/internal/dto"
	"github.com/SscSPs/videotube/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// userService implements the UserSvcFacade interface
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	media    portssvc.MediaStore
}

// NewUserService creates a new user service. media may be nil, in which case image uploads are rejected.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, media portssvc.MediaStore) portssvc.UserSvcFacade {
	return &userService{
		userRepo: userRepo,
		media:    media,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) Register(ctx context.Context, req dto.RegisterUserRequest, files dto.RegisterFiles) (*domain.User, error) {
	fullName := strings.TrimSpace(req.FullName)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.ToLower(strings.TrimSpace(req.Username))
	if fullName == "" || email == "" || username == "" || strings.TrimSpace(req.Password) == "" {
		return nil, apperrors.Validation("All fields are required")
	}
	if err := validate.Var(email, "email"); err != nil {
		return nil, apperrors.Validation("Invalid email format")
	}

	existing, err := s.userRepo.FindUserByUsernameOrEmail(ctx, username, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for existing user", slog.String("username", username))
		return nil, apperrors.Internal("Failed to register user", err)
	}
	if existing != nil {
		return nil, apperrors.Duplicate("User with email or username already exists")
	}

	avatar, err := s.uploadImage(ctx, files.AvatarPath, domain.AssetAvatar, "Avatar")
	if err != nil {
		return nil, err
	}
	cover, err := s.uploadImage(ctx, files.CoverImagePath, domain.AssetCoverImage, "Cover image")
	if err != nil {
		s.discardAsset(ctx, s.media, avatar, domain.AssetAvatar)
		return nil, err
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:     uuid.NewString(),
		Username:   username,
		Email:      email,
		FullName:   fullName,
		Avatar:     avatar,
		CoverImage: cover,
		Timestamps: domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if err := user.SetPassword(req.Password); err != nil {
		s.discardAsset(ctx, s.media, avatar, domain.AssetAvatar)
		s.discardAsset(ctx, s.media, cover, domain.AssetCoverImage)
		if errors.Is(err, utils.ErrPasswordTooLong) {
			return nil, apperrors.Validation("Password must be at most 72 bytes")
		}
		s.LogError(ctx, err, "Failed to hash password")
		return nil, apperrors.Internal("Failed to register user", err)
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.discardAsset(ctx, s.media, avatar, domain.AssetAvatar)
		s.discardAsset(ctx, s.media, cover, domain.AssetCoverImage)
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.Duplicate("User with email or username already exists")
		}
		s.LogError(ctx, err, "Failed to save user", slog.String("username", username))
		return nil, apperrors.Internal("Failed to register user", err)
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

// uploadImage relays an optional image. An empty path yields an empty URL.
func (s *userService) uploadImage(ctx context.Context, localPath string, kind domain.AssetKind, label string) (string, error) {
	if localPath == "" {
		return "", nil
	}
	if !utils.IsImageFile(localPath) {
		return "", apperrors.Validation(fmt.Sprintf("%s must be an image file", label))
	}
	if s.media == nil {
		return "", apperrors.Internal(fmt.Sprintf("Failed to upload %s", strings.ToLower(label)), errors.New("media store not configured"))
	}
	asset, err := s.media.Upload(ctx, localPath, kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to upload image", slog.String("kind", string(kind)))
		return "", apperrors.Internal(fmt.Sprintf("Failed to upload %s", strings.ToLower(label)), err)
	}
	return asset.URL, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, s.wrapRepoError(ctx, err, "User not found", "Failed to load user", slog.String("user_id", userID))
	}
	return user, nil
}

func (s *userService) GetChannelProfile(ctx context.Context, username, viewerID string) (*domain.ChannelProfile, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, apperrors.Validation("Username is missing")
	}
	profile, err := s.userRepo.FindChannelProfile(ctx, username, viewerID)
	if err != nil {
		return nil, s.wrapRepoError(ctx, err, "Channel does not exist", "Failed to load channel", slog.String("username", username))
	}
	return profile, nil
}

func (s *userService) AuthenticateUser(ctx context.Context, req dto.LoginRequest) (*domain.User, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if username == "" && email == "" {
		return nil, apperrors.Validation("Username or email is required")
	}
	if req.Password == "" {
		return nil, apperrors.Validation("Password is required")
	}

	user, err := s.userRepo.FindUserByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, s.wrapRepoError(ctx, err, "User does not exist", "Failed to load user")
	}
	if !user.VerifyPassword(req.Password) {
		s.LogInfo(ctx, "Rejected login with invalid password", slog.String("user_id", user.UserID))
		return nil, apperrors.Unauthorized("Invalid user credentials")
	}
	return user, nil
}

func (s *userService) ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error {
	if req.OldPassword == "" || strings.TrimSpace(req.NewPassword) == "" {
		return apperrors.Validation("Old and new password are required")
	}
	if req.OldPassword == req.NewPassword {
		return apperrors.Validation("New password must be different from the old password")
	}

	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.VerifyPassword(req.OldPassword) {
		return apperrors.Unauthorized("Invalid old password")
	}
	if err := user.SetPassword(req.NewPassword); err != nil {
		if errors.Is(err, utils.ErrPasswordTooLong) {
			return apperrors.Validation("Password must be at most 72 bytes")
		}
		s.LogError(ctx, err, "Failed to hash password", slog.String("user_id", userID))
		return apperrors.Internal("Failed to change password", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, user.PasswordHash, time.Now().UTC()); err != nil {
		return s.wrapRepoError(ctx, err, "User not found", "Failed to change password", slog.String("user_id", userID))
	}

	s.LogInfo(ctx, "Password changed", slog.String("user_id", userID))
	return nil
}

func (s *userService) UpdateAccountDetails(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	if req.FullName == nil && req.Email == nil {
		return nil, apperrors.Validation("At least one field is required")
	}

	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if req.FullName != nil {
		fullName := strings.TrimSpace(*req.FullName)
		if fullName == "" {
			return nil, apperrors.Validation("Full name cannot be blank")
		}
		user.FullName = fullName
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if err := validate.Var(email, "required,email"); err != nil {
			return nil, apperrors.Validation("Invalid email format")
		}
		user.Email = email
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.Duplicate("Email is already in use")
		}
		return nil, s.wrapRepoError(ctx, err, "User not found", "Failed to update account details", slog.String("user_id", userID))
	}
	return user, nil
}

func (s *userService) UpdateAvatar(ctx context.Context, userID, localPath string) (*domain.User, error) {
	return s.replaceImage(ctx, userID, localPath, domain.AssetAvatar)
}

func (s *userService) UpdateCoverImage(ctx context.Context, userID, localPath string) (*domain.User, error) {
	return s.replaceImage(ctx, userID, localPath, domain.AssetCoverImage)
}

// replaceImage uploads the new image, persists it and only then deletes the previous asset.
func (s *userService) replaceImage(ctx context.Context, userID, localPath string, kind domain.AssetKind) (*domain.User, error) {
	label := "Avatar"
	if kind == domain.AssetCoverImage {
		label = "Cover image"
	}
	if localPath == "" {
		return nil, apperrors.Validation(label + " file is missing")
	}

	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	url, err := s.uploadImage(ctx, localPath, kind, label)
	if err != nil {
		return nil, err
	}

	previous := user.Avatar
	if kind == domain.AssetAvatar {
		user.Avatar = url
	} else {
		previous = user.CoverImage
		user.CoverImage = url
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.discardAsset(ctx, s.media, url, kind)
		return nil, s.wrapRepoError(ctx, err, "User not found", "Failed to update "+strings.ToLower(label), slog.String("user_id", userID))
	}
	s.discardAsset(ctx, s.media, previous, kind)
	return user, nil
}

func (s *userService) FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(info.Email))
	if email == "" {
		return nil, apperrors.Validation("Google account has no email")
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, s.wrapRepoError(ctx, err, "", "Failed to load user", slog.String("email", email))
	}

	username, err := googleUsername(email)
	if err != nil {
		return nil, apperrors.Internal("Failed to create user", err)
	}
	fullName := strings.TrimSpace(info.Name)
	if fullName == "" {
		fullName = username
	}

	now := time.Now().UTC()
	newUser := domain.User{
		UserID:     uuid.NewString(),
		Username:   username,
		Email:      email,
		FullName:   fullName,
		Avatar:     info.Picture,
		Timestamps: domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.Duplicate("User with email or username already exists")
		}
		return nil, s.wrapRepoError(ctx, err, "", "Failed to create user", slog.String("email", email))
	}

	s.LogInfo(ctx, "User created from Google sign-in", slog.String("user_id", newUser.UserID))
	return &newUser, nil
}

// googleUsername derives a unique-enough handle from the email's local part.
func googleUsername(email string) (string, error) {
	local, _, _ := strings.Cut(email, "@")
	var b strings.Builder
	for _, r := range local {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '.' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		b.WriteString("user")
	}
	suffix, err := utils.RandomHex(3)
	if err != nil {
		return "", err
	}
	return b.String() + "_" + suffix, nil
}

func (s *userService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, refreshTokenHash, refreshTokenExpiryTime); err != nil {
		return s.wrapRepoError(ctx, err, "User not found", "Failed to store refresh token", slog.String("user_id", userID))
	}
	return nil
}

func (s *userService) RotateRefreshToken(ctx context.Context, userID, currentHash, newHash string, refreshTokenExpiryTime time.Time) error {
	return s.userRepo.RotateRefreshToken(ctx, userID, currentHash, newHash, refreshTokenExpiryTime)
}

func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		return s.wrapRepoError(ctx, err, "", "Failed to clear refresh token", slog.String("user_id", userID))
	}
	return nil
}
