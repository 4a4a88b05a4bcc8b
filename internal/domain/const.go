package domain

const (
	// Blockchain constants
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"

	// Screening constants
	DEFAULT_LEADERBOARD_SIZE = 10
	DEFAULT_TOKEN_DECIMALS   = 18
	RUN_LEASE_NAME           = "screening"
)

// Settings keys in the key-value store
const (
	SettingScreeningIntervalHours  = "screening_interval_hours"
	SettingEligibilityThresholdRaw = "eligibility_threshold_raw"
	SettingBotNotificationsEnabled = "bot_notifications_enabled"
	SettingNotificationChatID      = "notification_chat_id"
	SettingTokenDecimals           = "token_decimals"
	SettingSummaryTemplate         = "message_template_summary"
)

// SettingKeys lists every recognised settings key
var SettingKeys = []string{
	SettingScreeningIntervalHours,
	SettingEligibilityThresholdRaw,
	SettingBotNotificationsEnabled,
	SettingNotificationChatID,
	SettingTokenDecimals,
	SettingSummaryTemplate,
}
