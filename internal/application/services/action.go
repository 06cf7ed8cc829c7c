package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"file-storage-api/internal/apperrors"
	"file-storage-api/internal/application/ports"
	"file-storage-api/internal/domain/file"
	"file-storage-api/internal/domain/user"
	"file-storage-api/internal/infrastructure/mq"
)

// opTimeout bounds every storage round-trip so a stuck backend surfaces
// as Timeout instead of hanging the request.
const opTimeout = 10 * time.Second

type ActionService struct {
	s3       ports.S3Client
	mq       ports.RabbitMQ
	mCounter *prometheus.CounterVec
}

func NewActionService(
	s3 ports.S3Client,
	rabbit ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.ActionService {
	return &ActionService{
		s3:       s3,
		mq:       rabbit,
		mCounter: mCounter,
	}
}

func (fs *ActionService) Upload(
	ctx context.Context,
	userUUID user.UUID,
	in *multipart.FileHeader,
) (*file.ObjectRef, error) {
	fileName := sanitizeFileName(in.Filename)
	key := file.LiveKey(userUUID.String(), fileName)

	f, err := in.Open()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindBadRequest, "file upload failed", err)
	}
	defer f.Close()

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err = fs.s3.Put(ctx, key, f, in.Header.Get("Content-Type")); err != nil {
		if apperrors.IsTimeout(err) {
			return nil, err
		}
		return nil, apperrors.Wrap(apperrors.KindBadRequest, "file upload failed", err)
	}

	fs.emit(mq.ActionUploaded, userUUID, key)
	fs.mCounter.WithLabelValues("file_uploaded_total").Inc()

	return &file.ObjectRef{
		Key:  key,
		Size: in.Size,
		URL:  fs.s3.GetPublicURL(key),
	}, nil
}

func (fs *ActionService) FindFiles(
	ctx context.Context,
	userUUID user.UUID,
	page, limit int,
) (*file.Listing, error) {
	return fs.listPrefix(ctx, file.LivePrefix(userUUID.String()), page, limit)
}

func (fs *ActionService) FindTrash(
	ctx context.Context,
	userUUID user.UUID,
	page, limit int,
) (*file.Listing, error) {
	return fs.listPrefix(ctx, file.UserTrashPrefix(userUUID.String()), page, limit)
}

func (fs *ActionService) listPrefix(ctx context.Context, prefix string, page, limit int) (*file.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	refs, err := fs.s3.List(ctx, prefix)
	if err != nil {
		return nil, err
	}

	return &file.Listing{
		TotalFiles: len(refs),
		Page:       page,
		Limit:      limit,
		Files:      paginate(refs, page, limit),
	}, nil
}

// paginate slices a full prefix scan. Out-of-range values yield an empty
// page, never an error.
func paginate(refs file.ObjectRefs, page, limit int) file.ObjectRefs {
	if page < 1 || limit <= 0 {
		return file.ObjectRefs{}
	}
	start := (page - 1) * limit
	if start >= len(refs) {
		return file.ObjectRefs{}
	}
	end := start + limit
	if end > len(refs) {
		end = len(refs)
	}

	return refs[start:end]
}

// PresignDownload signs a GET URL without checking that the object exists;
// a stale link simply 404s at the storage backend.
func (fs *ActionService) PresignDownload(
	ctx context.Context,
	userUUID user.UUID,
	fileName string,
) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	return fs.s3.PresignGet(ctx, file.LiveKey(userUUID.String(), fileName))
}

func (fs *ActionService) MoveToTrash(
	ctx context.Context,
	userUUID user.UUID,
	fileName string,
) error {
	src := file.LiveKey(userUUID.String(), fileName)
	dst := file.TrashKey(userUUID.String(), fileName)

	if err := fs.copyThenDelete(ctx, src, dst); err != nil {
		return err
	}

	fs.emit(mq.ActionTrashed, userUUID, dst)
	fs.mCounter.WithLabelValues("file_trashed_total").Inc()

	return nil
}

func (fs *ActionService) Restore(
	ctx context.Context,
	userUUID user.UUID,
	fileName string,
) error {
	src := file.TrashKey(userUUID.String(), fileName)
	dst := file.LiveKey(userUUID.String(), fileName)

	if err := fs.copyThenDelete(ctx, src, dst); err != nil {
		return err
	}

	fs.emit(mq.ActionRestored, userUUID, dst)
	fs.mCounter.WithLabelValues("file_restored_total").Inc()

	return nil
}

// copyThenDelete moves an object between the live and trash prefixes.
// S3 has no rename, so this is two calls with no rollback: a failed
// delete leaves the object in both places, which a retry resolves.
func (fs *ActionService) copyThenDelete(ctx context.Context, src, dst string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := fs.s3.Copy(ctx, src, dst); err != nil {
		if apperrors.IsNotFound(err) || apperrors.IsTimeout(err) {
			return err
		}
		return apperrors.Wrap(apperrors.KindBadRequest, "file move failed", err)
	}

	if err := fs.s3.Delete(ctx, src); err != nil {
		// the copy already landed; a missing source is not a failure
		if apperrors.IsNotFound(err) {
			return nil
		}
		return apperrors.Wrap(apperrors.KindBadRequest, "file move failed", err)
	}

	return nil
}

// Delete permanently removes an object from the trash. Files still live
// under the user prefix must be moved to trash first.
func (fs *ActionService) Delete(
	ctx context.Context,
	userUUID user.UUID,
	fileName string,
) error {
	key := file.TrashKey(userUUID.String(), fileName)

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	// DeleteObject succeeds on a missing key, so existence is checked
	// explicitly to keep "delete without trashing" an error.
	exists, err := fs.s3.Head(ctx, key)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.New(apperrors.KindNotFound, "file not found in trash")
	}

	if err = fs.s3.Delete(ctx, key); err != nil {
		return err
	}

	fs.emit(mq.ActionDeleted, userUUID, key)
	fs.mCounter.WithLabelValues("file_deleted_total").Inc()

	return nil
}

func (fs *ActionService) emit(action string, userUUID user.UUID, key string) {
	fs.mq.GetInputChan() <- mq.Event{
		Id:     uuid.New(),
		TS:     time.Now(),
		Action: action,
		UserID: userUUID.String(),
		Key:    key,
		Bucket: fs.s3.GetBucket(),
	}
}
