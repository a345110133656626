package upload

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"school-admin-api/config"
)

var ErrSignerNotConfigured = errors.New("cloudinary credentials are not configured")

type UploadService struct {
	CFG *config.Config
}

// SignatureResponse carries everything the browser needs to POST the file
// straight to Cloudinary without the API secret ever leaving the server.
type SignatureResponse struct {
	Timestamp int64  `json:"timestamp"`
	Signature string `json:"signature"`
	APIKey    string `json:"api_key"`
	CloudName string `json:"cloud_name"`
	Folder    string `json:"folder"`
}

// SignParams builds the Cloudinary signature string: parameters sorted by
// key, joined as key=value with "&", then the API secret appended, SHA-1
// hashed and hex encoded.
func SignParams(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%s", k, params[k]))
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))
	return hex.EncodeToString(sum[:])
}

// SignUpload issues a short-lived signature for a direct upload into the
// configured folder.
func (s *UploadService) SignUpload(now time.Time) (*SignatureResponse, error) {
	if s.CFG.CloudinaryAPISecret == "" {
		return nil, ErrSignerNotConfigured
	}

	timestamp := now.Unix()
	params := map[string]string{
		"folder":    s.CFG.CloudinaryFolder,
		"timestamp": fmt.Sprintf("%d", timestamp),
	}

	return &SignatureResponse{
		Timestamp: timestamp,
		Signature: SignParams(params, s.CFG.CloudinaryAPISecret),
		APIKey:    s.CFG.CloudinaryAPIKey,
		CloudName: s.CFG.CloudinaryCloudName,
		Folder:    s.CFG.CloudinaryFolder,
	}, nil
}
