package domain

// Settings are the user-adjustable preferences persisted with the state.
// StorageQuotaMB and KeepDaysMin are the only settings the storage engine consumes.
type Settings struct {
	StorageQuotaMB       int  `json:"storageQuotaMB" validate:"min=25,max=500,quota_step"`
	KeepDaysMin          int  `json:"keepDaysMin" validate:"min=0"`
	NotificationsEnabled bool `json:"notificationsEnabled"`
	UseOpenAIAnalyzer    bool `json:"useOpenAIAnalyzer"`
}

// DefaultSettings returns the settings a fresh install starts with
func DefaultSettings() Settings {
	return Settings{
		StorageQuotaMB:       DefaultStorageQuotaMB,
		KeepDaysMin:          DefaultKeepDaysMin,
		NotificationsEnabled: true,
		UseOpenAIAnalyzer:    false,
	}
}

// QuotaBytes converts the configured quota to bytes (1 MB = 1,048,576 bytes)
func (s Settings) QuotaBytes() int64 {
	return int64(s.StorageQuotaMB) * BytesPerMB
}
