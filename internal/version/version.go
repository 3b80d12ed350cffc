package version

// Version is the version of the wordy CLI. It is overridden at build time with
// -ldflags "-X github.com/hashicorp-forge/wordy/internal/version.Version=...".
var Version = "0.1.0-dev"

// UserAgent is sent with every API request made by the CLI.
func UserAgent() string {
	return "wordy-cli/" + Version
}
