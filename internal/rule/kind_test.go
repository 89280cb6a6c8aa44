package rule

import "testing"

func TestKindRoundTrip(t *testing.T) {
	kinds := []Kind{KindLint, KindStyle, KindIdiomatic, KindMetrics, KindPerformance}

	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			var back Kind
			if err := back.UnmarshalText([]byte(kind.String())); err != nil {
				t.Fatal(err)
			}

			if back != kind {
				t.Errorf("round trip changed %v into %v", kind, back)
			}
		})
	}
}

func TestKindUnknown(t *testing.T) {
	var k Kind
	if err := k.UnmarshalText([]byte("nonsense")); err == nil {
		t.Error("expected an error for an unknown kind")
	}

	if got := Kind(999).String(); got != "invalid(999)" {
		t.Errorf("unexpected invalid rendering %q", got)
	}
}

func TestNullParams(t *testing.T) {
	if !NullParams(nil) {
		t.Error("nil node must count as null parameters")
	}
}
