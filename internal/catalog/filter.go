package catalog

import "fmt"

// FilterMode selects catalog entries by their activation state.
type FilterMode int

const (
	// FilterAll keeps every registered rule.
	FilterAll FilterMode = iota

	// FilterEnabled keeps rules activated by the project configuration.
	FilterEnabled

	// FilterDisabled keeps rules the project configuration leaves out.
	FilterDisabled
)

var filterModeValueMap = map[FilterMode]string{
	FilterAll:      "all",
	FilterEnabled:  "enabled",
	FilterDisabled: "disabled",
}

func (m FilterMode) String() string {
	v, ok := filterModeValueMap[m]
	if !ok {
		return fmt.Sprintf("invalid(%d)", m)
	}

	return v
}

// Filter selects identifiers from ids by the mode, preserving order.
// It is a pure function; the caller guarantees a single coherent mode.
func Filter(mode FilterMode, ids []string, cfg Resolver) []string {
	if mode == FilterAll {
		out := make([]string, len(ids))
		copy(out, ids)

		return out
	}

	var out []string
	for _, id := range ids {
		_, configured := cfg.Resolve(id)

		switch mode {
		case FilterEnabled:
			if configured {
				out = append(out, id)
			}
		case FilterDisabled:
			if !configured {
				out = append(out, id)
			}
		}
	}

	return out
}
