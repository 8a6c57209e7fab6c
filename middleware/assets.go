package middleware

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"os"
	"path"
	"sync"

	"legal_ai_site/logger"
)

// StaticDir is where versioned assets are served from
const StaticDir = "static"

// versionedAssets are hashed once at startup for cache busting
var versionedAssets = []string{
	"css/style.css",
	"js/app.js",
	"images/favicon.svg",
}

var (
	assetVersions     map[string]string
	assetVersionsOnce sync.Once
)

// InitAssetVersions computes file hashes for cache busting at startup
func InitAssetVersions() {
	assetVersionsOnce.Do(func() {
		assetVersions = computeAssetVersions(StaticDir, versionedAssets)
		logger.Infof("asset versions initialized: %d files", len(assetVersions))
	})
}

func computeAssetVersions(dir string, files []string) map[string]string {
	versions := make(map[string]string, len(files))
	for _, file := range files {
		version := computeFileHash(path.Join(dir, file))
		if version == "" {
			version = "1"
		}
		versions[file] = version
	}
	return versions
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(p string) string {
	file, err := os.Open(p)
	if err != nil {
		logger.Warnf("failed to open file for hashing %s: %v", p, err)
		return ""
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		logger.Warnf("failed to hash file %s: %v", p, err)
		return ""
	}

	return hex.EncodeToString(hash.Sum(nil))[:8]
}

// AssetURL returns the public URL of a static file with its version query.
// ctx is accepted for consistency with the other template helpers.
func AssetURL(ctx context.Context, file string) string {
	version := "1"
	if v, ok := assetVersions[file]; ok {
		version = v
	}
	return "/" + StaticDir + "/" + file + "?v=" + version
}
