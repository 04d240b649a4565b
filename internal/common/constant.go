package common

// Storage bucket keys. Accounts and logs each live under a single key as
// one JSON array; settings are split per account.
const (
	AccountsKey      = "wellness_users"
	ActiveAccountKey = "wellness_active_user"
	LogsKey          = "wellness_logs_v2"

	// SettingsKeyPrefix is joined with an account id, or with
	// DefaultSettingsID when no account is active.
	SettingsKeyPrefix = "settings_"
	DefaultSettingsID = "default"
)

// SettingsKey returns the settings bucket key for the given account id.
// An empty id resolves to the shared default bucket.
func SettingsKey(accountID string) string {
	if accountID == "" {
		accountID = DefaultSettingsID
	}
	return SettingsKeyPrefix + accountID
}
