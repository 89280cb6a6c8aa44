package sigs

import "maps"

// Logging recognizes calls that write an error to a log of some sort.
type Logging struct {
	known map[PackagedFunc]LogKind
}

// KnownLogging builds the logging catalog, merging custom entries over
// the predefined set.
func KnownLogging(custom map[PackagedFunc]LogKind) *Logging {
	predefined := map[PackagedFunc]LogKind{
		// Stdlib.
		{PkgPath: "builtin", Name: "print"}:   LogKindFormat,
		{PkgPath: "builtin", Name: "println"}: LogKindFormat,
		{PkgPath: "fmt", Name: "Print"}:       LogKindFormat,
		{PkgPath: "fmt", Name: "Printf"}:      LogKindFormat,
		{PkgPath: "fmt", Name: "Println"}:     LogKindFormat,
		{PkgPath: "log", Name: "Print"}:       LogKindFormat,
		{PkgPath: "log", Name: "Printf"}:      LogKindFormat,
		{PkgPath: "log", Name: "Println"}:     LogKindFormat,
		{PkgPath: "log", Name: "Panic"}:       LogKindFormat,
		{PkgPath: "log", Name: "Panicf"}:      LogKindFormat,
		{PkgPath: "log", Name: "Panicln"}:     LogKindFormat,
		{PkgPath: "log", Name: "Fatal"}:       LogKindFormat,
		{PkgPath: "log", Name: "Fatalf"}:      LogKindFormat,
		{PkgPath: "log", Name: "Fatalln"}:     LogKindFormat,
		{PkgPath: "log/slog", Name: "Debug"}:  LogKindSlog,
		{PkgPath: "log/slog", Name: "Info"}:   LogKindSlog,
		{PkgPath: "log/slog", Name: "Warn"}:   LogKindSlog,
		{PkgPath: "log/slog", Name: "Error"}:  LogKindSlog,

		// Zap.
		{PkgPath: "go.uber.org/zap", Name: "Log"}:    LogKindZap,
		{PkgPath: "go.uber.org/zap", Name: "Debug"}:  LogKindZap,
		{PkgPath: "go.uber.org/zap", Name: "Info"}:   LogKindZap,
		{PkgPath: "go.uber.org/zap", Name: "Warn"}:   LogKindZap,
		{PkgPath: "go.uber.org/zap", Name: "Error"}:  LogKindZap,
		{PkgPath: "go.uber.org/zap", Name: "DPanic"}: LogKindZap,
		{PkgPath: "go.uber.org/zap", Name: "Panic"}:  LogKindZap,
		{PkgPath: "go.uber.org/zap", Name: "Fatal"}:  LogKindZap,

		// Zerolog.
		{PkgPath: "github.com/rs/zerolog/log", Name: "Msg"}:   LogKindZerolog,
		{PkgPath: "github.com/rs/zerolog/log", Name: "Msgf"}:  LogKindZerolog,
		{PkgPath: "github.com/rs/zerolog/log", Name: "Print"}: LogKindZerolog,
		{PkgPath: "github.com/rs/zerolog", Name: "Msg"}:       LogKindZerolog,
		{PkgPath: "github.com/rs/zerolog", Name: "Msgf"}:      LogKindZerolog,

		// My bias in work!
		{PkgPath: "github.com/sirkon/message", Name: "Debug"}:     LogKindFormat,
		{PkgPath: "github.com/sirkon/message", Name: "Debugf"}:    LogKindFormat,
		{PkgPath: "github.com/sirkon/message", Name: "Info"}:      LogKindFormat,
		{PkgPath: "github.com/sirkon/message", Name: "Infof"}:     LogKindFormat,
		{PkgPath: "github.com/sirkon/message", Name: "Warning"}:   LogKindFormat,
		{PkgPath: "github.com/sirkon/message", Name: "Warningf"}:  LogKindFormat,
		{PkgPath: "github.com/sirkon/message", Name: "Error"}:     LogKindFormat,
		{PkgPath: "github.com/sirkon/message", Name: "Errorf"}:    LogKindFormat,
		{PkgPath: "github.com/sirkon/message", Name: "Critical"}:  LogKindFormat,
		{PkgPath: "github.com/sirkon/message", Name: "Criticalf"}: LogKindFormat,
		{PkgPath: "github.com/sirkon/message", Name: "Fatal"}:     LogKindFormat,
		{PkgPath: "github.com/sirkon/message", Name: "Fatalf"}:    LogKindFormat,
	}

	merged := maps.Clone(predefined)
	maps.Insert(merged, maps.All(custom))

	return &Logging{known: merged}
}

// Len returns the number of catalogued logging functions.
func (l *Logging) Len() int { return len(l.known) }

// Kind reports the logging signature kind of the given function.
func (l *Logging) Kind(fn PackagedFunc) (LogKind, bool) {
	k, ok := l.known[fn]
	return k, ok
}
