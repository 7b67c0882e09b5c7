// Package s3 serves files from Amazon S3 or an S3-compatible service
// (MinIO, Wasabi, DigitalOcean Spaces) through static.Send.
//
//	src, err := s3.New(ctx, s3.Config{
//		Bucket: "my-site",
//		Region: "eu-central-1",
//	})
//	if err != nil {
//		return err
//	}
//
//	app := ctxkit.New(func(c *ctxkit.Context) error {
//		_, err := c.Send(static.Options{
//			Root:   "public",
//			Index:  "index.html",
//			Source: src,
//		})
//		return err
//	})
//
// With a Source, Root is the key prefix: a request for /app.js reads the
// object "public/app.js". Send validates paths before they reach S3, so
// keys never contain ".." segments.
//
// Missing objects map to 404 and denied access to 403. Other failures,
// such as a missing bucket or network errors, are 500 responses that keep
// the cause for logging. A prefix that has objects under it behaves like a
// directory, which makes Index and Format work as with local files.
package s3
