// Package s3 reads feature files from Amazon S3.
//
//	store, err := s3.New(ctx, "images", s3.WithPrefix("features"))
//	if err != nil {
//	    return err
//	}
//	ds, err := dataset.Load(ctx, store, "rgb.csv.zst")
//
// Whole files are fetched with the multipart downloader from
// feature/s3/manager; Blob reads use ranged GetObject requests. WithEndpoint
// targets S3-compatible services with path-style addressing.
package s3
