package images

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/loptr-yoo/paking-ai-1/internal/architect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 16, G: 185, B: 129, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestFromBytes(t *testing.T) {
	data := testPNG(t, 64, 32)

	ref, err := FromBytes(data, "plan.png", "upload")
	require.NoError(t, err)
	assert.Equal(t, "image/png", ref.ContentType)
	assert.Equal(t, 64, ref.Width)
	assert.Equal(t, 32, ref.Height)

	item := ref.Item()
	assert.Equal(t, "upload", item.Source)
	assert.Equal(t, "plan.png", item.Name)
	assert.Equal(t, len(data), item.Bytes)

	_, err = FromBytes([]byte("not an image"), "x.txt", "upload")
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestDataURIRoundTrip(t *testing.T) {
	ref, err := FromBytes(testPNG(t, 8, 8), "", "upload")
	require.NoError(t, err)

	uri := ref.DataURI()
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	back, err := FromDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, ref.Data, back.Data)
	assert.Equal(t, "data_uri", back.Source)
}

func TestFromDataURI(t *testing.T) {
	raw := base64.StdEncoding.EncodeToString(testPNG(t, 4, 4))

	ref, err := FromDataURI(raw)
	require.NoError(t, err, "bare payload")
	assert.Equal(t, 4, ref.Width)

	_, err = FromDataURI("data:image/png;base64,@@@")
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestFromDataURIMatchesClientSplit(t *testing.T) {
	raw := base64.StdEncoding.EncodeToString(testPNG(t, 4, 4))

	for _, in := range []string{
		"data:image/png;base64," + raw,
		"image/png;base64," + raw,
		raw,
	} {
		assert.Equal(t, raw, architect.ImagePayload(in), in)

		ref, err := FromDataURI(in)
		require.NoError(t, err, in)
		assert.Equal(t, 4, ref.Width, in)

		_, err = architect.BuildParts(architect.Request{ReferenceImage: in})
		assert.NoError(t, err, in)
	}
}

func TestFromUploadTooLarge(t *testing.T) {
	big := bytes.Repeat([]byte{0}, MaxImageSize)
	_, err := FromUpload(bytes.NewReader(big), "huge.png")
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "lot.png")
	require.NoError(t, os.WriteFile(p, testPNG(t, 10, 20), 0644))

	ref, err := LoadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "lot.png", ref.Name)
	assert.Equal(t, "file", ref.Source)
	assert.Equal(t, 20, ref.Height)

	_, err = LoadFile(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
}

func TestFetcherDownload(t *testing.T) {
	data := testPNG(t, 16, 16)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.png" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	f := NewFetcher()
	ctx := context.Background()

	ref, err := f.Download(ctx, srv.URL+"/plans/floor.png")
	require.NoError(t, err)
	assert.Equal(t, "floor.png", ref.Name)
	assert.Equal(t, "url", ref.Source)
	assert.Equal(t, data, ref.Data)

	_, err = f.Download(ctx, srv.URL+"/missing.png")
	assert.ErrorContains(t, err, "HTTP 404")

	_, err = f.Download(ctx, "ftp://example.com/a.png")
	assert.Error(t, err)
}
