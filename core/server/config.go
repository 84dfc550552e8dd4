package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// EditorPin is the PIN that unlocks editor mode. When empty, the
	// dashboard is read-only for everyone (manager mode).
	EditorPin string `mapstructure:"editor_pin" default:""`
	// SessionTTLMinutes is how long an editor unlock stays valid.
	SessionTTLMinutes int `mapstructure:"session_ttl_minutes" default:"30"`
}

// HasEditorPin reports whether editing can be unlocked at all.
func (c Config) HasEditorPin() bool {
	return c.EditorPin != ""
}
