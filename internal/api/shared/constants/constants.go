package constants

const (
	MAX_PAGE_SIZE              = 100
	DEFAULT_RUNS_LIMIT         = 20
	DEFAULT_TREND_DAYS         = 7
	MAX_TREND_DAYS             = 365
	DEFAULT_RETRY_MAX_ATTEMPTS = 5
	MAX_RETRY_MAX_ATTEMPTS     = 10

	MAX_WEBHOOK_DESCRIPTION_LENGTH = 200

	// PROFILE_SECRET_HEADER carries the owner secret on profile mutations
	PROFILE_SECRET_HEADER = "X-Profile-Secret"
)
