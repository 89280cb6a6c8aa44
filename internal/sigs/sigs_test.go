package sigs

import "testing"

func TestKindsRoundTrip(t *testing.T) {
	t.Run("wrap", func(t *testing.T) {
		for _, kind := range []WrapKind{WrapKindErrorf, WrapKindWrap} {
			var back WrapKind
			if err := back.UnmarshalText([]byte(kind.String())); err != nil {
				t.Fatal(err)
			}
			if back != kind {
				t.Errorf("round trip changed %v into %v", kind, back)
			}
		}

		var k WrapKind
		if err := k.UnmarshalText([]byte("bogus")); err == nil {
			t.Error("expected an error for an unknown wrap kind")
		}
	})

	t.Run("logging", func(t *testing.T) {
		for _, kind := range []LogKind{LogKindFormat, LogKindZap, LogKindZerolog, LogKindSlog} {
			var back LogKind
			if err := back.UnmarshalText([]byte(kind.String())); err != nil {
				t.Fatal(err)
			}
			if back != kind {
				t.Errorf("round trip changed %v into %v", kind, back)
			}
		}
	})

	t.Run("abandon", func(t *testing.T) {
		for _, kind := range []AbandonKind{AbandonKindSilent, AbandonKindFormat, AbandonKindZap, AbandonKindZerolog} {
			var back AbandonKind
			if err := back.UnmarshalText([]byte(kind.String())); err != nil {
				t.Fatal(err)
			}
			if back != kind {
				t.Errorf("round trip changed %v into %v", kind, back)
			}
		}
	})
}

func TestKnownWrapsMerge(t *testing.T) {
	base := KnownWraps(nil)

	if _, ok := base.Kind(PackagedFunc{PkgPath: "fmt", Name: "Errorf"}); !ok {
		t.Fatal("fmt.Errorf must be predefined")
	}

	custom := map[PackagedFunc]WrapKind{
		// Custom entries win over predefined ones.
		{PkgPath: "fmt", Name: "Errorf"}:                    WrapKindWrap,
		{PkgPath: "github.com/acme/errs", Name: "Annotate"}: WrapKindWrap,
	}
	merged := KnownWraps(custom)

	if kind, _ := merged.Kind(PackagedFunc{PkgPath: "fmt", Name: "Errorf"}); kind != WrapKindWrap {
		t.Errorf("custom entry must override the predefined one, got %v", kind)
	}
	if _, ok := merged.Kind(PackagedFunc{PkgPath: "github.com/acme/errs", Name: "Annotate"}); !ok {
		t.Error("custom entry is missing")
	}
	if merged.Len() != base.Len()+1 {
		t.Errorf("merged catalog size %d, want %d", merged.Len(), base.Len()+1)
	}
}

func TestKnownCatalogsNotEmpty(t *testing.T) {
	if KnownLogging(nil).Len() == 0 {
		t.Error("logging catalog must carry predefined entries")
	}
	if KnownAbandons(nil).Len() == 0 {
		t.Error("abandon catalog must carry predefined entries")
	}
}
