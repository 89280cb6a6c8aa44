package sigs

import "fmt"

// WrapKind describes varieties of error wrapping.
type WrapKind int

const (
	WrapKindInvalid WrapKind = iota

	// WrapKindErrorf demands an error to be an argument of the list.
	WrapKindErrorf

	// WrapKindWrap demands an error to be the first variable of the call and the message to be not empty.
	WrapKindWrap
)

var wrapKindValueMap = map[WrapKind]string{
	WrapKindErrorf: "errorf",
	WrapKindWrap:   "wrap",
}

func (s WrapKind) String() string {
	v, ok := wrapKindValueMap[s]
	if !ok {
		return fmt.Sprintf("invalid(%d)", s)
	}

	return v
}

// UnmarshalText for setting values with configs, CLI, etc.
func (s *WrapKind) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range wrapKindValueMap {
		if v == text {
			*s = k
			return nil
		}
	}

	return fmt.Errorf("unknown error wrap kind %q", text)
}

// LogKind describes varieties of logging.
type LogKind int

const (
	LogKindInvalid LogKind = iota
	LogKindFormat
	LogKindZap
	LogKindZerolog
	LogKindSlog

	// TODO support more logging types.
)

var logKindValueMap = map[LogKind]string{
	LogKindFormat:  "format",
	LogKindZap:     "zap",
	LogKindZerolog: "zerolog",
	LogKindSlog:    "slog",
}

func (s LogKind) String() string {
	v, ok := logKindValueMap[s]
	if !ok {
		return fmt.Sprintf("invalid(%d)", s)
	}

	return v
}

func (s *LogKind) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range logKindValueMap {
		if v == text {
			*s = k
			return nil
		}
	}

	return fmt.Errorf("unknown logging kind %q", text)
}

// AbandonKind describes varieties of execution abandoning.
type AbandonKind int

const (
	AbandonKindInvalid AbandonKind = iota

	AbandonKindSilent
	AbandonKindFormat
	AbandonKindZap
	AbandonKindZerolog
)

var abandonKindValueMap = map[AbandonKind]string{
	AbandonKindSilent:  "silent",
	AbandonKindFormat:  "format",
	AbandonKindZap:     "zap",
	AbandonKindZerolog: "zerolog",
}

func (s AbandonKind) String() string {
	v, ok := abandonKindValueMap[s]
	if !ok {
		return fmt.Sprintf("invalid(%d)", s)
	}

	return v
}

func (s *AbandonKind) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range abandonKindValueMap {
		if v == text {
			*s = k
			return nil
		}
	}

	return fmt.Errorf("unknown execution abandon kind %q", text)
}
