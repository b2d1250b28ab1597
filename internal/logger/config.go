package logger

import (
	"log/slog"
	"strings"
)

// Config selects the handler and the attributes stamped on every record
type Config struct {
	Level       string // "debug", "info", "warn", "error"
	Format      string // "json", "text"
	ServiceName string
	Version     string
	Environment string
	// SaveSlot tells apart gardens sharing one log sink
	SaveSlot  string
	AddSource bool
}

// LogLevel maps Level onto slog, defaulting to info
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn, LogLevelWarning:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsJSON reports whether records are written as JSON
func (c Config) IsJSON() bool {
	return strings.EqualFold(c.Format, LogFormatJSON)
}

// BaseAttributes are added to every record. Empty values are left out.
func (c Config) BaseAttributes() []slog.Attr {
	serviceName := c.ServiceName
	if serviceName == "" {
		serviceName = DefaultServiceName
	}
	attrs := []slog.Attr{slog.String(AttrKeyService, serviceName)}
	if c.Version != "" {
		attrs = append(attrs, slog.String(AttrKeyVersion, c.Version))
	}
	if c.Environment != "" {
		attrs = append(attrs, slog.String(AttrKeyEnvironment, c.Environment))
	}
	if c.SaveSlot != "" {
		attrs = append(attrs, slog.String(AttrKeySaveSlot, c.SaveSlot))
	}
	return attrs
}
