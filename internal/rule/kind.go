package rule

import "fmt"

// Kind classifies what aspect of the code a rule cares about.
type Kind int

const (
	kindInvalid Kind = iota

	// KindLint rules catch likely bugs.
	KindLint

	// KindStyle rules enforce formatting and naming conventions.
	KindStyle

	// KindIdiomatic rules push towards canonical Go usage.
	KindIdiomatic

	// KindMetrics rules bound measurable code properties.
	KindMetrics

	// KindPerformance rules catch needless inefficiencies.
	KindPerformance
)

var kindValueMap = map[Kind]string{
	KindLint:        "lint",
	KindStyle:       "style",
	KindIdiomatic:   "idiomatic",
	KindMetrics:     "metrics",
	KindPerformance: "performance",
}

func (k Kind) String() string {
	v, ok := kindValueMap[k]
	if !ok {
		return fmt.Sprintf("invalid(%d)", k)
	}

	return v
}

// UnmarshalText for setting values with configs, CLI, etc.
func (k *Kind) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for key, v := range kindValueMap {
		if v == text {
			*k = key
			return nil
		}
	}

	return fmt.Errorf("unknown rule kind %q", text)
}
