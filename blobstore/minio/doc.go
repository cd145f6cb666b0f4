// Package minio reads feature files from MinIO or another S3-compatible
// server through the minio-go client.
//
//	store, err := minio.NewFromEnv("localhost:9000", "images", "features")
//	if err != nil {
//	    return err
//	}
//	ds, err := dataset.Load(ctx, store, "texture.json")
//
// NewFromEnv takes credentials from MINIO_ACCESS_KEY and MINIO_SECRET_KEY and
// enables TLS when MINIO_SECURE is true. NewStore accepts a preconfigured
// *minio.Client.
package minio
