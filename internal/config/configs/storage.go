package configs

// Storage configures the S3 compatible bucket holding ad creatives. Leaving
// Bucket empty disables image uploads.
type Storage struct {
	Bucket    string `env:"BUCKET"`
	Region    string `env:"REGION" envDefault:"ap-northeast-2"`
	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	// PublicURL is the CDN base returned to clients. Defaults to the
	// bucket URL when empty.
	PublicURL      string `env:"PUBLIC_URL"`
	MaxUploadBytes int64  `env:"MAX_UPLOAD_BYTES" envDefault:"5242880"`
	// JPEG and PNG creatives larger than this box are scaled down.
	MaxImageWidth  int `env:"MAX_IMAGE_WIDTH" envDefault:"1200"`
	MaxImageHeight int `env:"MAX_IMAGE_HEIGHT" envDefault:"1200"`
}

// Enabled reports whether uploads are configured.
func (c Storage) Enabled() bool {
	return c.Bucket != ""
}
