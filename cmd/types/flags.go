package types

const (
	FlagHome     = "home"
	FlagLogLevel = "log-level"

	DefaultHome     = "$HOME/.forgedash"
	DefaultLogLevel = "info"
)
