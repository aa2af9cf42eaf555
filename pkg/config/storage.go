package config

type StorageConfig struct {
	// Mode es "local" o "s3"
	Mode      string
	LocalPath string
	AWSRegion string
	AWSBucket string
	KeyPrefix string
}

func loadStorageConfig() StorageConfig {
	return StorageConfig{
		Mode:      getEnv("STORAGE_MODE", "local"),
		LocalPath: getEnv("UPLOAD_DIR", "./uploads"),
		AWSRegion: getEnv("AWS_REGION", "us-east-1"),
		AWSBucket: getEnv("AWS_BUCKET", "talenta-uploads"),
		KeyPrefix: getEnv("STORAGE_KEY_PREFIX", "resumes"),
	}
}
