package models

// TwoFactorStatus reports whether TOTP is enabled for the account.
type TwoFactorStatus struct {
	Enabled bool `json:"twoFactorEnabled"`
}

// TwoFactorSetup is returned when a new TOTP secret is generated. QRCode is
// a data URL the authenticator app can scan.
type TwoFactorSetup struct {
	QRCode         string `json:"qrCode"`
	Secret         string `json:"secret"`
	ManualEntryKey string `json:"manualEntryKey"`
}

// Key returns the secret to type in manually.
func (s TwoFactorSetup) Key() string {
	if s.Secret != "" {
		return s.Secret
	}
	return s.ManualEntryKey
}
