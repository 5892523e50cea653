package sources

// Apple Passwords CSV header columns.
const (
	appleColTitle    = "title"
	appleColURL      = "url"
	appleColUsername = "username"
	appleColPassword = "password"
	appleColNotes    = "notes"
	appleColOTPAuth  = "otpauth"
)

// AppleName is the registry name of the Apple Passwords source.
const AppleName = "apple"

var appleFormat = csvFormat{
	name:        AppleName,
	description: "Apple Passwords / iCloud Keychain export (CSV)",
	columns: map[string]field{
		appleColTitle:    fieldTitle,
		appleColURL:      fieldURL,
		appleColUsername: fieldUsername,
		appleColPassword: fieldPassword,
		appleColNotes:    fieldNotes,
		appleColOTPAuth:  fieldOTPAuth,
	},
	signature: []string{
		appleColTitle, appleColURL, appleColUsername,
		appleColPassword, appleColNotes, appleColOTPAuth,
	},
}

// AppleSource reads Apple Passwords CSV exports
// (Title, URL, Username, Password, Notes, OTPAuth).
type AppleSource struct {
	csvSource
}

// NewAppleSource creates a new Apple Passwords source adapter.
func NewAppleSource() *AppleSource {
	return &AppleSource{csvSource{format: appleFormat}}
}

func init() {
	RegisterDefault(NewAppleSource())
}

var _ Source = (*AppleSource)(nil)
