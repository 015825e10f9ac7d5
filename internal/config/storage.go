package config

import "os"

// StorageConfig holds the base directory for the submission artifact store.
// An empty SubmissionPath is rejected at store construction, not per request.
type StorageConfig struct {
	SubmissionPath string
}

func NewStorageConfig() *StorageConfig {
	return &StorageConfig{
		SubmissionPath: os.Getenv("SUBMISSION_PATH"),
	}
}
