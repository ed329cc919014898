package device

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasconf/tasconf/status"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)
	return &Client{Host: u.Hostname(), Port: port}
}

func TestDownload(t *testing.T) {
	image := []byte{0x23, 0x5A, 1, 2, 3, 4}
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dl", r.URL.Path)
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write(image)
	}))

	got, err := c.Download(context.Background())
	require.NoError(t, err)
	assert.Equal(t, image, got)
}

func TestDownloadAdminModeDisabled(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		io.WriteString(w, "<html>nope</html>")
	}))

	_, err := c.Download(context.Background())
	require.Error(t, err)
	assert.Equal(t, status.DownloadError, status.CodeOf(err))
	assert.Contains(t, err.Error(), "WebServer 2")
}

func TestDownloadConnectionRefused(t *testing.T) {
	c := &Client{Host: "127.0.0.1", Port: 1}
	_, err := c.Download(context.Background())
	require.Error(t, err)
	assert.Equal(t, status.HTTPConnectionError, status.CodeOf(err))
}

func TestDownloadBasicAuth(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "admin" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write([]byte{1})
	}))
	c.Username = "admin"
	c.Password = "secret"

	_, err := c.Download(context.Background())
	require.NoError(t, err)

	c.Password = "wrong"
	_, err = c.Download(context.Background())
	require.Error(t, err)
}

func TestHostname(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cm", r.URL.Path)
		assert.Equal(t, "status 5", r.URL.Query().Get("cmnd"))
		fmt.Fprint(w, `{"StatusNET":{"Hostname":"sonoff-4281","IPAddress":"192.168.2.10"}}`)
	}))

	name, err := c.Hostname(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sonoff-4281", name)
}

func TestUpload(t *testing.T) {
	image := []byte{0x23, 0x5A, 9, 9}
	var primed bool
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rs":
			primed = true
			w.Header().Set("Content-Type", "text/html")
			io.WriteString(w, "<html>restore armed</html>")
		case "/u2":
			require.True(t, primed, "restore page must be fetched before the upload")
			require.NoError(t, r.ParseMultipartForm(1<<20))
			file, header, err := r.FormFile("u2")
			require.NoError(t, err)
			defer file.Close()
			body, err := io.ReadAll(file)
			require.NoError(t, err)
			assert.Equal(t, image, body)
			assert.True(t, strings.HasSuffix(header.Filename, ".dmp"))
			w.Header().Set("Content-Type", "text/html")
			io.WriteString(w, "<html><b>Upload <font color='#008000'>Successful</font></b></html>")
		default:
			t.Errorf("unexpected request %s", r.URL.Path)
		}
	}))

	err := c.Upload(context.Background(), image, "tasconf_v1.0.0.dmp")
	require.NoError(t, err)
}

func TestUploadFailureReason(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		if r.URL.Path == "/u2" {
			io.WriteString(w,
				"<html><b>Upload <font color='#ff0000'>failed</font></b><br><br>Not enough space<br></html>")
			return
		}
		io.WriteString(w, "<html>ok</html>")
	}))

	err := c.Upload(context.Background(), []byte{1}, "x.dmp")
	require.Error(t, err)
	assert.Equal(t, status.UploadError, status.CodeOf(err))
	assert.Contains(t, err.Error(), "Not enough space")
}

func TestBaseURL(t *testing.T) {
	c := &Client{Host: "sonoff"}
	assert.Equal(t, "http://sonoff/", c.baseURL())
	c.Port = 8080
	assert.Equal(t, "http://sonoff:8080/", c.baseURL())
	c.Port = 80
	assert.Equal(t, "http://sonoff/", c.baseURL())
}
