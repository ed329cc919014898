// Package device talks to a live device over its embedded web server:
// downloading the active configuration, uploading a replacement, and
// querying status.
package device

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/tasconf/tasconf/status"
)

// DefaultPort is the device web server port.
const DefaultPort = 80

// Client accesses one device.
type Client struct {
	Host     string
	Port     int
	Username string
	Password string

	// HTTPClient overrides the transport. Nil uses a client with a
	// reasonable timeout.
	HTTPClient *http.Client
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 30 * time.Second}
}

func (c *Client) baseURL() string {
	port := c.Port
	if port == 0 {
		port = DefaultPort
	}
	if port == DefaultPort {
		return fmt.Sprintf("http://%s/", c.Host)
	}
	return fmt.Sprintf("http://%s:%d/", c.Host, port)
}

func (c *Client) get(ctx context.Context, path, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL()+path, nil)
	if err != nil {
		return nil, status.Errorf(status.InternalError, "%v", err)
	}
	if c.Username != "" && c.Password != "" {
		req.SetBasicAuth(c.Username, c.Password)
	}
	res, err := c.httpClient().Do(req)
	if err != nil {
		return nil, status.Errorf(status.HTTPConnectionError,
			"failed to establish HTTP connection to '%s': %v", c.Host, err)
	}
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, status.Errorf(status.DownloadError, "reading response from '%s': %v", c.Host, err)
	}
	if res.StatusCode != http.StatusOK {
		return nil, status.Errorf(status.DownloadError,
			"HTTP GET %s%s: %s", c.baseURL(), path, res.Status)
	}
	if contentType != "" && !strings.HasPrefix(res.Header.Get("Content-Type"), contentType) {
		return nil, status.Errorf(status.DownloadError,
			"device did not respond properly, web server admin mode may be disabled (WebServer 2)")
	}
	return body, nil
}

// Download pulls the obfuscated configuration image from the device.
func (c *Client) Download(ctx context.Context) ([]byte, error) {
	return c.get(ctx, "dl", "application/octet-stream")
}

// Hostname queries the device's network status for its real hostname.
func (c *Client) Hostname(ctx context.Context) (string, error) {
	query := "cm?cmnd=status%205"
	if c.Password != "" {
		query = fmt.Sprintf("cm?user=%s&password=%s&cmnd=status%%205",
			url.QueryEscape(c.Username), url.QueryEscape(c.Password))
	}
	body, err := c.get(ctx, query, "")
	if err != nil {
		return "", err
	}
	var parsed struct {
		StatusNET struct {
			Hostname string
		}
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", status.Errorf(status.DownloadError, "unexpected status response: %v", err)
	}
	return parsed.StatusNET.Hostname, nil
}

var uploadErr = regexp.MustCompile(`<font\s*color='[#0-9a-fA-F]+'>(\S*)</font></b><br><br>(.*)<br>`)

// Upload pushes an obfuscated configuration image to the device. The
// restore page is fetched first so the device arms its internal state, then
// the image goes up as a multipart form. The device answers with an HTML
// result page that has to be scanned for the outcome.
func (c *Client) Upload(ctx context.Context, image []byte, filename string) error {
	if _, err := c.get(ctx, "rs?", "text/html"); err != nil {
		return err
	}

	var form bytes.Buffer
	mw := multipart.NewWriter(&form)
	fw, err := mw.CreateFormFile("u2", filename)
	if err != nil {
		return status.Errorf(status.InternalError, "%v", err)
	}
	if _, err := fw.Write(image); err != nil {
		return status.Errorf(status.InternalError, "%v", err)
	}
	if err := mw.Close(); err != nil {
		return status.Errorf(status.InternalError, "%v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL()+"u2", &form)
	if err != nil {
		return status.Errorf(status.InternalError, "%v", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if c.Username != "" && c.Password != "" {
		req.SetBasicAuth(c.Username, c.Password)
	}
	res, err := c.httpClient().Do(req)
	if err != nil {
		return status.Errorf(status.UploadError, "HTTP POST %su2: %v", c.baseURL(), err)
	}
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return status.Errorf(status.UploadError, "reading upload response: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		return status.Errorf(status.UploadError, "HTTP POST %su2: %s", c.baseURL(), res.Status)
	}
	if !strings.HasPrefix(res.Header.Get("Content-Type"), "text/html") {
		return status.Errorf(status.UploadError,
			"device did not respond properly, web server admin mode may be disabled (WebServer 2)")
	}

	page := string(body)
	i := strings.Index(page, "Upload")
	if i < 0 {
		return status.Errorf(status.UploadError, "device did not respond with an upload result page")
	}
	page = page[i:]
	if !strings.Contains(page, "Successful") {
		reason := "unknown error"
		if m := uploadErr.FindStringSubmatch(page); len(m) > 2 {
			reason = m[2]
		}
		return status.Errorf(status.UploadError, "upload failed: %s", reason)
	}
	return nil
}
