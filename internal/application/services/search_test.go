package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"file-storage-api/internal/apperrors"
)

func seedSearchObjects(s3 *fakeS3, userUUID uuid.UUID) {
	for _, name := range []string{
		"Annual-Report.PDF",
		"report-draft.pdf",
		"photo.png",
		"photo-copy.PNG",
		"notes.txt",
	} {
		s3.objects[userUUID.String()+"/"+name] = []byte("x")
	}
	// foreign namespace, must never match
	s3.objects[uuid.NewString()+"/report.pdf"] = []byte("x")
}

func TestSearchByName_ShortQuery(t *testing.T) {
	svc := NewSearchService(newFakeS3())

	for _, q := range []string{"", "a", "ab"} {
		_, err := svc.SearchByName(context.Background(), uuid.New(), q)
		require.Error(t, err, "query %q", q)
		assert.True(t, apperrors.IsBadRequest(err))
	}
}

func TestSearchByName_CaseInsensitiveSubstring(t *testing.T) {
	s3 := newFakeS3()
	svc := NewSearchService(s3)
	userUUID := uuid.New()
	seedSearchObjects(s3, userUUID)

	out, err := svc.SearchByName(context.Background(), userUUID, "rEpOrT")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, userUUID.String()+"/Annual-Report.PDF", out[0].Key)
	assert.Equal(t, userUUID.String()+"/report-draft.pdf", out[1].Key)
}

func TestSearchByExtension_CaseSensitiveSuffix(t *testing.T) {
	s3 := newFakeS3()
	svc := NewSearchService(s3)
	userUUID := uuid.New()
	seedSearchObjects(s3, userUUID)

	out, err := svc.SearchByExtension(context.Background(), userUUID, "png")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, userUUID.String()+"/photo.png", out[0].Key)

	out, err = svc.SearchByExtension(context.Background(), userUUID, "PNG")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, userUUID.String()+"/photo-copy.PNG", out[0].Key)
}

func TestSearchByExtension_ShortQuery(t *testing.T) {
	svc := NewSearchService(newFakeS3())

	_, err := svc.SearchByExtension(context.Background(), uuid.New(), "py")
	require.Error(t, err)
	assert.True(t, apperrors.IsBadRequest(err))
}
