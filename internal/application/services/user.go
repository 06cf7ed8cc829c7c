package services

import (
	"context"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"file-storage-api/internal/apperrors"
	"file-storage-api/internal/application/ports"
	"file-storage-api/internal/domain/file"
	"file-storage-api/internal/domain/token"
	domain "file-storage-api/internal/domain/user"
)

// The avatar key is fixed per user; only the extension varies, so lookup
// probes the known candidates in order.
var avatarExts = []string{"jpg", "jpeg", "png"}

type UserService struct {
	userRepository domain.Repository
	keyTokens      token.KeyTokenRepository
	s3             ports.S3Client
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	keyTokens token.KeyTokenRepository,
	s3 ports.S3Client,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		keyTokens:      keyTokens,
		s3:             s3,
		mCounter:       mCounter,
	}
}

func (us *UserService) FindUserByID(ctx context.Context, uuid domain.UUID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, uuid)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperrors.New(apperrors.KindNotFound, "user not found")
	}

	return u, nil
}

func (us *UserService) FindUsers(ctx context.Context, page int) (domain.Users, error) {
	users, err := us.userRepository.FetchUsers(ctx, page)
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (us *UserService) UpdateUserRole(ctx context.Context, uuid domain.UUID, role string) (*domain.User, error) {
	if role != domain.RoleUser && role != domain.RoleAdmin {
		return nil, apperrors.New(apperrors.KindBadRequest, "role must be USER or ADMIN")
	}

	u, err := us.userRepository.UpdateUserRole(ctx, uuid, role)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperrors.New(apperrors.KindNotFound, "user not found")
	}

	us.mCounter.WithLabelValues("user_role_updated_total").Inc()

	return u, nil
}

func (us *UserService) DeleteUser(ctx context.Context, uuid domain.UUID) error {
	u, err := us.userRepository.DeleteUser(ctx, uuid)
	if err != nil {
		return err
	}
	if u == nil {
		return apperrors.New(apperrors.KindNotFound, "user not found")
	}

	// revoke the deleted user's refresh sessions
	if err = us.keyTokens.DeleteForUser(ctx, uuid); err != nil {
		return err
	}

	us.mCounter.WithLabelValues("user_deleted_total").Inc()

	return nil
}

// UploadAvatar overwrites the fixed avatar key with the extension taken
// from the uploaded file's original name.
func (us *UserService) UploadAvatar(
	ctx context.Context,
	uuid domain.UUID,
	in *multipart.FileHeader,
) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(in.Filename), "."))
	if !validAvatarExt(ext) {
		return "", apperrors.New(apperrors.KindBadRequest, "avatar must be a jpg, jpeg or png image")
	}

	f, err := in.Open()
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindBadRequest, "avatar upload failed", err)
	}
	defer f.Close()

	key := file.AvatarKey(uuid.String(), ext)

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err = us.s3.Put(ctx, key, f, in.Header.Get("Content-Type")); err != nil {
		if apperrors.IsTimeout(err) {
			return "", err
		}
		return "", apperrors.Wrap(apperrors.KindBadRequest, "avatar upload failed", err)
	}

	us.mCounter.WithLabelValues("avatar_uploaded_total").Inc()

	return us.s3.GetPublicURL(key), nil
}

// GetAvatarURL probes the candidate avatar keys and presigns the first
// hit. A user with no avatar yields (nil, nil).
func (us *UserService) GetAvatarURL(ctx context.Context, uuid domain.UUID) (*string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	for _, ext := range avatarExts {
		key := file.AvatarKey(uuid.String(), ext)

		exists, err := us.s3.Head(ctx, key)
		if err != nil {
			return nil, err
		}
		if !exists {
			continue
		}

		url, err := us.s3.PresignGet(ctx, key)
		if err != nil {
			return nil, err
		}
		return &url, nil
	}

	return nil, nil
}

func validAvatarExt(ext string) bool {
	for _, e := range avatarExts {
		if ext == e {
			return true
		}
	}
	return false
}
