package config

import "sync"

type UploadConfig struct {
	Dir          string
	MaxBytes     int64
	PublicPrefix string
}

var (
	uploadConfig *UploadConfig
	uploadOnce   sync.Once
)

func LoadUploadConfig() *UploadConfig {
	uploadOnce.Do(func() {
		v := Env()
		uploadConfig = &UploadConfig{
			Dir:          v.GetString("UPLOAD_DIR"),
			MaxBytes:     v.GetInt64("UPLOAD_MAX_BYTES"),
			PublicPrefix: "/uploads",
		}
	})
	return uploadConfig
}
