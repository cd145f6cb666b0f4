package main

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/hupe1980/vecrank/blobstore"
	"github.com/hupe1980/vecrank/blobstore/minio"
	"github.com/hupe1980/vecrank/blobstore/s3"
)

// storeSpec is a parsed --store value.
type storeSpec struct {
	scheme   string
	endpoint string // minio only
	bucket   string
	prefix   string
	dir      string // file only
}

// parseStore accepts a directory, file://dir, s3://bucket/prefix or
// minio://endpoint/bucket/prefix.
func parseStore(raw string) (storeSpec, error) {
	if raw == "" {
		return storeSpec{scheme: "file", dir: "."}, nil
	}
	if !strings.Contains(raw, "://") {
		return storeSpec{scheme: "file", dir: raw}, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return storeSpec{}, usagef("invalid --store %q: %v", raw, err)
	}

	switch u.Scheme {
	case "file":
		dir := u.Host + u.Path
		if dir == "" {
			dir = "."
		}
		return storeSpec{scheme: "file", dir: dir}, nil
	case "s3":
		if u.Host == "" {
			return storeSpec{}, usagef("invalid --store %q: missing bucket", raw)
		}
		return storeSpec{scheme: "s3", bucket: u.Host, prefix: strings.Trim(u.Path, "/")}, nil
	case "minio":
		bucket, prefix, _ := strings.Cut(strings.Trim(u.Path, "/"), "/")
		if u.Host == "" || bucket == "" {
			return storeSpec{}, usagef("invalid --store %q: want minio://endpoint/bucket[/prefix]", raw)
		}
		return storeSpec{scheme: "minio", endpoint: u.Host, bucket: bucket, prefix: prefix}, nil
	default:
		return storeSpec{}, usagef("invalid --store %q: unsupported scheme %q", raw, u.Scheme)
	}
}

func (s storeSpec) open(ctx context.Context) (blobstore.BlobStore, error) {
	switch s.scheme {
	case "s3":
		st, err := s3.New(ctx, s.bucket, s3.WithPrefix(s.prefix))
		if err != nil {
			return nil, &ioError{err: fmt.Errorf("s3 store: %w", err)}
		}
		return st, nil
	case "minio":
		st, err := minio.NewFromEnv(s.endpoint, s.bucket, s.prefix)
		if err != nil {
			return nil, &ioError{err: fmt.Errorf("minio store: %w", err)}
		}
		return st, nil
	default:
		return blobstore.NewLocalStore(s.dir), nil
	}
}

// locate resolves the store and blob name of a feature file. Without an
// explicit --store the file is a local path.
func (e *env) locate(storeSet bool, file string) (storeSpec, string, error) {
	if !storeSet {
		return storeSpec{scheme: "file", dir: filepath.Dir(file)}, filepath.Base(file), nil
	}
	spec, err := parseStore(e.store)
	return spec, file, err
}
