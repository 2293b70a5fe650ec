package game

// Log messages for game transitions
const (
	LogMsgStateLoaded         = "State loaded"
	LogMsgStaleDayClosed      = "Closed stale day on load"
	LogMsgMealRecorded        = "Meal recorded"
	LogMsgHealthSynced        = "Health synced"
	LogMsgDestinationUnlocked = "Destination unlocked"
	LogMsgExplored            = "Exploration resolved"
	LogMsgDayClosed           = "Day closed"
	LogMsgLevelUp             = "Avatar levelled up"
	LogMsgBossVictory         = "Boss defeated"
	LogMsgSettingsUpdated     = "Settings updated"
	LogMsgStateImported       = "State imported"
	LogMsgRotationFailed      = "Saved but rotation failed"
	LogMsgReportRenderFailed  = "Report snapshot failed"
	LogMsgDailyReport         = "Daily report"
	LogMsgReportSkipped       = "Notifications disabled, report skipped"
)
