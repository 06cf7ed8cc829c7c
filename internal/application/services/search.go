package services

import (
	"context"
	"strings"
	"time"

	"file-storage-api/internal/apperrors"
	"file-storage-api/internal/application/ports"
	"file-storage-api/internal/domain/file"
	"file-storage-api/internal/domain/user"
)

const minQueryLen = 3

type SearchService struct {
	s3 ports.S3Client
}

func NewSearchService(s3 ports.S3Client) ports.SearchService {
	return &SearchService{s3: s3}
}

// SearchByName matches a case-insensitive substring of the file name
// (the key with the user prefix stripped).
func (ss *SearchService) SearchByName(
	ctx context.Context,
	userUUID user.UUID,
	query string,
) (file.ObjectRefs, error) {
	needle := strings.ToLower(query)

	return ss.search(ctx, userUUID, query, func(fileName string) bool {
		return strings.Contains(strings.ToLower(fileName), needle)
	})
}

// SearchByExtension matches a case-sensitive key suffix: "png" does not
// find "photo.PNG".
func (ss *SearchService) SearchByExtension(
	ctx context.Context,
	userUUID user.UUID,
	ext string,
) (file.ObjectRefs, error) {
	return ss.search(ctx, userUUID, ext, func(fileName string) bool {
		return strings.HasSuffix(fileName, ext)
	})
}

func (ss *SearchService) search(
	ctx context.Context,
	userUUID user.UUID,
	query string,
	match func(fileName string) bool,
) (file.ObjectRefs, error) {
	if len(query) < minQueryLen {
		return nil, apperrors.New(apperrors.KindBadRequest, "search query must be at least 3 characters")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	prefix := file.LivePrefix(userUUID.String())
	refs, err := ss.s3.List(ctx, prefix)
	if err != nil {
		return nil, err
	}

	out := make(file.ObjectRefs, 0, len(refs))
	for _, ref := range refs {
		if match(strings.TrimPrefix(ref.Key, prefix)) {
			out = append(out, ref)
		}
	}

	return out, nil
}
