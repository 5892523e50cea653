package sources

// Chrome CSV header columns.
const (
	chromeColName     = "name"
	chromeColURL      = "url"
	chromeColUsername = "username"
	chromeColPassword = "password"
	chromeColNote     = "note"
)

// ChromeName is the registry name of the Chrome source.
const ChromeName = "chrome"

var chromeFormat = csvFormat{
	name:        ChromeName,
	description: "Google Chrome password export (CSV)",
	columns: map[string]field{
		chromeColName:     fieldTitle,
		chromeColURL:      fieldURL,
		chromeColUsername: fieldUsername,
		chromeColPassword: fieldPassword,
		chromeColNote:     fieldNotes,
	},
	signature: []string{chromeColName, chromeColURL, chromeColUsername, chromeColPassword},
}

// ChromeSource reads Chrome CSV exports (name, url, username, password, note).
// Chrome does not export TOTP secrets, so rows never carry OTPAuth.
type ChromeSource struct {
	csvSource
}

// NewChromeSource creates a new Chrome CSV source adapter.
func NewChromeSource() *ChromeSource {
	return &ChromeSource{csvSource{format: chromeFormat}}
}

func init() {
	RegisterDefault(NewChromeSource())
}

var _ Source = (*ChromeSource)(nil)
