package media

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/newsdesk/newsdesk-api/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader builds a real multipart.FileHeader by encoding and re-parsing a form.
func fileHeader(t *testing.T, field, filename, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	require.Len(t, form.File[field], 1)
	return form.File[field][0]
}

func TestPolicies_Admit(t *testing.T) {
	cases := []struct {
		name   string
		policy Policy
		file   string
		mime   string
		ok     bool
	}{
		{"jpeg image", ImagePolicy, "photo.JPG", "image/jpeg", true},
		{"avif image", ImagePolicy, "a.avif", "image/avif", true},
		{"mime with params", ImagePolicy, "a.png", "image/png; charset=binary", true},
		{"extension mime mismatch", ImagePolicy, "a.png", "image/jpeg", false},
		{"exe rejected", ImagePolicy, "setup.exe", "application/octet-stream", false},
		{"no extension", ImagePolicy, "photo", "image/jpeg", false},
		{"wmv video", VideoPolicy, "clip.wmv", "video/x-ms-wmv", true},
		{"avi alt mime", VideoPolicy, "clip.avi", "video/avi", true},
		{"image not a video", VideoPolicy, "a.png", "image/png", false},
		{"breaking news mov", BreakingNewsPolicy, "b.mov", "video/quicktime", true},
		{"breaking news webp thumb", BreakingNewsPolicy, "t.webp", "image/webp", true},
		{"breaking news no avi", BreakingNewsPolicy, "b.avi", "video/x-msvideo", false},
		{"breaking news no avif", BreakingNewsPolicy, "t.avif", "image/avif", false},
		{"media image", MediaPolicy, "m.gif", "image/gif", true},
		{"media video", MediaPolicy, "m.mp4", "video/mp4", true},
		{"media pdf", MediaPolicy, "m.pdf", "application/pdf", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.policy.Admit("file", tc.file, tc.mime)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrUnsupportedMediaType)
		})
	}
}

func TestAdmit_ErrorNamesMimeAndExtension(t *testing.T) {
	err := ImagePolicy.Admit("image", "virus.exe", "application/x-msdownload")
	var ume *errs.UnsupportedMediaTypeError
	require.True(t, errors.As(err, &ume))
	assert.Equal(t, "image", ume.Field)
	assert.Equal(t, "exe", ume.Ext)
	assert.Equal(t, "application/x-msdownload", ume.MIME)
}

func TestBreakingNewsPolicy_Extensions(t *testing.T) {
	assert.Equal(t, []string{"gif", "jpeg", "jpg", "mov", "mp4", "png", "webp"}, BreakingNewsPolicy.Extensions())
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "my-holiday_photo.jpg", SanitizeFilename("my holiday_photo.jpg"))
	assert.Equal(t, "passwd", SanitizeFilename("../../etc/passwd"))
	assert.Equal(t, "evil.png", SanitizeFilename(`C:\temp\evil.png`))
	assert.Equal(t, "caf.png", SanitizeFilename("café.png"))
	assert.Equal(t, "htaccess", SanitizeFilename(".htaccess"))
	assert.Equal(t, "", SanitizeFilename(""))
}

func TestStager_Stage(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	s := NewStager(dir)
	s.now = func() time.Time { return time.UnixMilli(1700000000123) }

	fh := fileHeader(t, "image", "front page.png", "image/png", []byte("png-bytes"))
	path, err := s.Stage(fh)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "1700000000123-front-page.png"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestStager_SameNameSameMillisecond(t *testing.T) {
	dir := t.TempDir()
	s := NewStager(dir)
	s.now = func() time.Time { return time.UnixMilli(1700000000123) }

	first, err := s.Stage(fileHeader(t, "image", "photo.jpg", "image/jpeg", []byte("REQUEST-A")))
	require.NoError(t, err)
	second, err := s.Stage(fileHeader(t, "image", "photo.jpg", "image/jpeg", []byte("REQUEST-B")))
	require.NoError(t, err)
	third, err := s.Stage(fileHeader(t, "image", "photo.jpg", "image/jpeg", []byte("REQUEST-C")))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "1700000000123-photo.jpg"), first)
	assert.Equal(t, filepath.Join(dir, "1700000000123-photo-1.jpg"), second)
	assert.Equal(t, filepath.Join(dir, "1700000000123-photo-2.jpg"), third)
	for path, want := range map[string]string{first: "REQUEST-A", second: "REQUEST-B", third: "REQUEST-C"} {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, want, string(data))
	}
}

type recordingUploader struct {
	folders []string
	err     error
}

func (r *recordingUploader) Upload(_ context.Context, localPath, folder string) (string, error) {
	r.folders = append(r.folders, folder)
	if r.err != nil {
		return "", r.err
	}
	return "https://media.example.com/" + folder + "/" + filepath.Base(localPath), nil
}

func TestIngester_AdmitsAllBeforeUploading(t *testing.T) {
	up := &recordingUploader{}
	in := NewIngester(NewStager(t.TempDir()), up)

	video := fileHeader(t, "video", "clip.mp4", "video/mp4", []byte("v"))
	bad := fileHeader(t, "thumbnail", "thumb.exe", "application/octet-stream", []byte("x"))

	_, err := in.Ingest(context.Background(), []Upload{
		{Field: "video", File: video, Policy: BreakingNewsPolicy, Folder: "breaking-news-videos"},
		{Field: "thumbnail", File: bad, Policy: BreakingNewsPolicy, Folder: "breaking-news-thumbnails"},
	})
	assert.ErrorIs(t, err, errs.ErrUnsupportedMediaType)
	assert.Empty(t, up.folders, "no upload may start when any file is rejected")
}

func TestIngester_Success(t *testing.T) {
	up := &recordingUploader{}
	in := NewIngester(NewStager(t.TempDir()), up)

	fh := fileHeader(t, "file", "clip.mov", "video/quicktime", []byte("v"))
	res, err := in.Ingest(context.Background(), []Upload{{Field: "file", File: fh, Policy: MediaPolicy, Folder: "media"}})
	require.NoError(t, err)

	require.Contains(t, res, "file")
	assert.True(t, strings.HasPrefix(res["file"].URL, "https://media.example.com/media/"))
	assert.Equal(t, "video/quicktime", res["file"].MIME)
	assert.Equal(t, []string{"media"}, up.folders)
}

func TestIngester_UploadFailureStops(t *testing.T) {
	up := &recordingUploader{err: errors.New("upload failed: host down")}
	in := NewIngester(NewStager(t.TempDir()), up)

	a := fileHeader(t, "video", "a.mp4", "video/mp4", []byte("v"))
	b := fileHeader(t, "thumbnail", "b.png", "image/png", []byte("p"))
	_, err := in.Ingest(context.Background(), []Upload{
		{Field: "video", File: a, Policy: BreakingNewsPolicy, Folder: "breaking-news-videos"},
		{Field: "thumbnail", File: b, Policy: BreakingNewsPolicy, Folder: "breaking-news-thumbnails"},
	})
	require.Error(t, err)
	assert.Len(t, up.folders, 1)
}

func TestIngester_StagingFailureKeepsCause(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	up := &recordingUploader{}
	in := NewIngester(NewStager(filepath.Join(blocker, "uploads")), up)

	fh := fileHeader(t, "image", "a.png", "image/png", []byte("p"))
	_, err := in.Ingest(context.Background(), []Upload{{Field: "image", File: fh, Policy: ImagePolicy, Folder: "news"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUploadFailed)
	var pathErr *fs.PathError
	assert.ErrorAs(t, err, &pathErr)
	assert.Empty(t, up.folders)
}
