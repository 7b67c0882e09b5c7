package s3

// Config holds the bucket settings loaded from the environment.
// An empty Bucket means S3 is not used.
type Config struct {
	Bucket         string `env:"S3_BUCKET"`
	Region         string `env:"S3_REGION" envDefault:"us-east-1"`
	AccessKeyID    string `env:"S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"S3_SECRET_KEY"`
	Endpoint       string `env:"S3_ENDPOINT"` // MinIO, Wasabi, Spaces
	ForcePathStyle bool   `env:"S3_FORCE_PATH_STYLE" envDefault:"false"`

	// Prefix is the key prefix files are served from; pass it as
	// static.Options.Root.
	Prefix string `env:"S3_PREFIX" envDefault:"/"`
}

// Enabled reports whether a bucket is configured.
func (c Config) Enabled() bool {
	return c.Bucket != ""
}
