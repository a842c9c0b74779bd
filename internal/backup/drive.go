package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "backup").Logger()

const (
	driveAPIBase    = "https://www.googleapis.com/drive/v3"
	driveUploadBase = "https://www.googleapis.com/upload/drive/v3"

	// Backups live in the hidden appDataFolder space, invisible to the
	// user's normal Drive listing.
	driveSpace = "appDataFolder"

	multipartBoundary = "-------314159265358979323846"
)

// DriveTransport talks to the Google Drive v3 files API with a bearer token.
type DriveTransport struct {
	apiBase    string
	uploadBase string
	token      string
	client     *http.Client
}

// NewDriveTransport creates a transport using the given access token. The
// token is opaque here; acquiring and refreshing it is the caller's problem.
func NewDriveTransport(token string) *DriveTransport {
	return &DriveTransport{
		apiBase:    driveAPIBase,
		uploadBase: driveUploadBase,
		token:      token,
		client:     &http.Client{Timeout: 30 * time.Second},
	}
}

// NewDriveTransportForBase is NewDriveTransport against a custom endpoint,
// used by tests.
func NewDriveTransportForBase(token, apiBase, uploadBase string) *DriveTransport {
	t := NewDriveTransport(token)
	t.apiBase = apiBase
	t.uploadBase = uploadBase
	return t
}

type driveFile struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ModifiedTime string `json:"modifiedTime"`
}

type driveFileList struct {
	Files []driveFile `json:"files"`
}

// Find searches the app data folder for filename. Returns nil when no
// untrashed file with that name exists.
func (t *DriveTransport) Find(ctx context.Context, filename string) (*FileInfo, error) {
	params := url.Values{
		"q":      {fmt.Sprintf("name='%s' and trashed = false", filename)},
		"spaces": {driveSpace},
		"fields": {"files(id, name, modifiedTime)"},
	}

	var list driveFileList
	if err := t.getJSON(ctx, t.apiBase+"/files?"+params.Encode(), &list); err != nil {
		return nil, fmt.Errorf("searching for backup: %w", err)
	}
	if len(list.Files) == 0 {
		return nil, nil
	}

	f := list.Files[0]
	modified, err := time.Parse(time.RFC3339, f.ModifiedTime)
	if err != nil {
		return nil, fmt.Errorf("parsing modifiedTime %q: %w", f.ModifiedTime, err)
	}
	return &FileInfo{ID: f.ID, ModifiedTime: modified}, nil
}

// Upload creates or replaces the named backup file with a multipart upload.
func (t *DriveTransport) Upload(ctx context.Context, filename string, data []byte) error {
	existing, err := t.Find(ctx, filename)
	if err != nil {
		return err
	}

	meta := map[string]any{
		"name":     filename,
		"mimeType": "application/json",
	}
	method := http.MethodPost
	uploadURL := t.uploadBase + "/files?uploadType=multipart"
	if existing != nil {
		method = http.MethodPatch
		uploadURL = fmt.Sprintf("%s/files/%s?uploadType=multipart", t.uploadBase, existing.ID)
	} else {
		meta["parents"] = []string{driveSpace}
	}

	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("encoding upload metadata: %w", err)
	}

	var body bytes.Buffer
	fmt.Fprintf(&body, "--%s\r\n", multipartBoundary)
	body.WriteString("Content-Type: application/json; charset=UTF-8\r\n\r\n")
	body.Write(metaJSON)
	fmt.Fprintf(&body, "\r\n--%s\r\n", multipartBoundary)
	body.WriteString("Content-Type: application/json\r\n\r\n")
	body.Write(data)
	fmt.Fprintf(&body, "\r\n--%s--", multipartBoundary)

	req, err := http.NewRequestWithContext(ctx, method, uploadURL, &body)
	if err != nil {
		return fmt.Errorf("building upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+t.token)
	req.Header.Set("Content-Type", "multipart/related; boundary="+multipartBoundary)

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("uploading backup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Error().Int("status", resp.StatusCode).Msg("backup upload rejected")
		return fmt.Errorf("uploading backup: HTTP %d", resp.StatusCode)
	}
	logger.Info().Str("file", filename).Int("bytes", len(data)).Msg("backup uploaded")
	return nil
}

// Download fetches the raw snapshot bytes of a backup file.
func (t *DriveTransport) Download(ctx context.Context, fileID string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/files/%s?alt=media", t.apiBase, fileID), nil)
	if err != nil {
		return nil, fmt.Errorf("building download request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+t.token)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("downloading backup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("downloading backup: HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading backup body: %w", err)
	}
	return data, nil
}

func (t *DriveTransport) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+t.token)

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
