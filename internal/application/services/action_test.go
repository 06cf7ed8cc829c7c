package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"file-storage-api/internal/apperrors"
	"file-storage-api/internal/domain/file"
	"file-storage-api/internal/infrastructure/mq"
)

// fakeS3 keeps objects in a map and mimics the backend quirks the services
// depend on: copy of a missing source fails, delete of a missing key does
// not.
type fakeS3 struct {
	objects map[string][]byte
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}}
}

func (f *fakeS3) Put(_ context.Context, key string, body io.Reader, _ string) error {
	b, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.objects[key] = b
	return nil
}

func (f *fakeS3) List(_ context.Context, prefix string) (file.ObjectRefs, error) {
	var keys []string
	for k := range f.objects {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	refs := make(file.ObjectRefs, 0, len(keys))
	for _, k := range keys {
		refs = append(refs, file.ObjectRef{
			Key:  k,
			Size: int64(len(f.objects[k])),
			URL:  f.GetPublicURL(k),
		})
	}
	return refs, nil
}

func (f *fakeS3) Copy(_ context.Context, srcKey, dstKey string) error {
	b, ok := f.objects[srcKey]
	if !ok {
		return apperrors.New(apperrors.KindNotFound, "s3: copy object")
	}
	f.objects[dstKey] = b
	return nil
}

func (f *fakeS3) Delete(_ context.Context, key string) error {
	delete(f.objects, key)
	return nil
}

func (f *fakeS3) Head(_ context.Context, key string) (bool, error) {
	_, ok := f.objects[key]
	return ok, nil
}

func (f *fakeS3) PresignGet(_ context.Context, key string) (string, error) {
	return "https://presigned.test/" + key, nil
}

func (f *fakeS3) GetPublicURL(key string) string {
	return "https://test-bucket.s3.eu-central-1.amazonaws.com/" + key
}

func (f *fakeS3) GetBucket() string { return "test-bucket" }

type fakeMQ struct {
	in chan mq.Event
}

func newFakeMQ() *fakeMQ {
	return &fakeMQ{in: make(chan mq.Event, 32)}
}

func (f *fakeMQ) Connect(context.Context, string) error { return nil }
func (f *fakeMQ) Init() error                           { return nil }
func (f *fakeMQ) PublisherWorker(context.Context)       {}
func (f *fakeMQ) GetInputChan() chan mq.Event           { return f.in }
func (f *fakeMQ) GetConn() *amqp091.Connection          { return nil }

func testCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "test_counters"},
		[]string{"result"})
}

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var b bytes.Buffer
	w := multipart.NewWriter(&b)
	fw, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&b, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	require.Len(t, form.File["file"], 1)
	return form.File["file"][0]
}

func TestUpload_StoresUnderUserPrefix(t *testing.T) {
	s3 := newFakeS3()
	rabbit := newFakeMQ()
	svc := NewActionService(s3, rabbit, testCounter())
	userUUID := uuid.New()

	ref, err := svc.Upload(context.Background(), userUUID, fileHeader(t, "report.pdf", []byte("data")))
	require.NoError(t, err)

	wantKey := userUUID.String() + "/report.pdf"
	assert.Equal(t, wantKey, ref.Key)
	assert.Equal(t, s3.GetPublicURL(wantKey), ref.URL)
	assert.Contains(t, s3.objects, wantKey)

	e := <-rabbit.in
	assert.Equal(t, mq.ActionUploaded, e.Action)
	assert.Equal(t, wantKey, e.Key)
	assert.Equal(t, "test-bucket", e.Bucket)
}

func TestUpload_OverwritesExistingKey(t *testing.T) {
	s3 := newFakeS3()
	svc := NewActionService(s3, newFakeMQ(), testCounter())
	userUUID := uuid.New()

	_, err := svc.Upload(context.Background(), userUUID, fileHeader(t, "a.txt", []byte("v1")))
	require.NoError(t, err)
	_, err = svc.Upload(context.Background(), userUUID, fileHeader(t, "a.txt", []byte("v2")))
	require.NoError(t, err)

	assert.Equal(t, []byte("v2"), s3.objects[userUUID.String()+"/a.txt"])
}

func TestFindFiles_Pagination(t *testing.T) {
	s3 := newFakeS3()
	svc := NewActionService(s3, newFakeMQ(), testCounter())
	userUUID := uuid.New()

	for i := 0; i < 23; i++ {
		s3.objects[fmt.Sprintf("%s/file-%02d.txt", userUUID, i)] = []byte("x")
	}
	// another tenant's object must never leak into the listing
	s3.objects[uuid.NewString()+"/other.txt"] = []byte("x")

	cases := []struct {
		name      string
		page      int
		limit     int
		wantFiles int
	}{
		{"first page full", 1, 15, 15},
		{"second page remainder", 2, 15, 8},
		{"page past the end", 3, 15, 0},
		{"page zero clamps", 0, 15, 0},
		{"negative page clamps", -1, 15, 0},
		{"zero limit clamps", 1, 0, 0},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			out, err := svc.FindFiles(context.Background(), userUUID, tt.page, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, 23, out.TotalFiles)
			assert.Len(t, out.Files, tt.wantFiles)
		})
	}
}

func TestMoveToTrash_And_Restore(t *testing.T) {
	s3 := newFakeS3()
	rabbit := newFakeMQ()
	svc := NewActionService(s3, rabbit, testCounter())
	userUUID := uuid.New()

	liveKey := userUUID.String() + "/doc.txt"
	trashKey := "trash/" + liveKey
	s3.objects[liveKey] = []byte("data")

	require.NoError(t, svc.MoveToTrash(context.Background(), userUUID, "doc.txt"))
	assert.NotContains(t, s3.objects, liveKey)
	assert.Contains(t, s3.objects, trashKey)
	assert.Equal(t, mq.ActionTrashed, (<-rabbit.in).Action)

	require.NoError(t, svc.Restore(context.Background(), userUUID, "doc.txt"))
	assert.Contains(t, s3.objects, liveKey)
	assert.NotContains(t, s3.objects, trashKey)
	assert.Equal(t, mq.ActionRestored, (<-rabbit.in).Action)
}

func TestMoveToTrash_MissingFile(t *testing.T) {
	svc := NewActionService(newFakeS3(), newFakeMQ(), testCounter())

	err := svc.MoveToTrash(context.Background(), uuid.New(), "ghost.txt")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDelete_RequiresTrashedFile(t *testing.T) {
	s3 := newFakeS3()
	rabbit := newFakeMQ()
	svc := NewActionService(s3, rabbit, testCounter())
	userUUID := uuid.New()

	liveKey := userUUID.String() + "/doc.txt"
	s3.objects[liveKey] = []byte("data")

	// still live, never trashed
	err := svc.Delete(context.Background(), userUUID, "doc.txt")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Contains(t, s3.objects, liveKey)

	require.NoError(t, svc.MoveToTrash(context.Background(), userUUID, "doc.txt"))
	<-rabbit.in

	require.NoError(t, svc.Delete(context.Background(), userUUID, "doc.txt"))
	assert.Empty(t, s3.objects)
	assert.Equal(t, mq.ActionDeleted, (<-rabbit.in).Action)
}

func TestFindTrash_ScopedToUser(t *testing.T) {
	s3 := newFakeS3()
	svc := NewActionService(s3, newFakeMQ(), testCounter())
	userUUID := uuid.New()

	s3.objects["trash/"+userUUID.String()+"/old.txt"] = []byte("x")
	s3.objects["trash/"+uuid.NewString()+"/foreign.txt"] = []byte("x")
	s3.objects[userUUID.String()+"/live.txt"] = []byte("x")

	out, err := svc.FindTrash(context.Background(), userUUID, 1, 10)
	require.NoError(t, err)
	require.Len(t, out.Files, 1)
	assert.Equal(t, "trash/"+userUUID.String()+"/old.txt", out.Files[0].Key)
}

func TestPresignDownload_NoExistenceCheck(t *testing.T) {
	svc := NewActionService(newFakeS3(), newFakeMQ(), testCounter())
	userUUID := uuid.New()

	url, err := svc.PresignDownload(context.Background(), userUUID, "never-uploaded.bin")
	require.NoError(t, err)
	assert.Equal(t, "https://presigned.test/"+userUUID.String()+"/never-uploaded.bin", url)
}
