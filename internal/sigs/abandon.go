package sigs

import "maps"

// Some funcs are known for stopping current func execution or even stopping the whole program.
// Some of them can be used to report an error, some just stop the flow and this means a proper
// logging should be made before the call.
type Abandons struct {
	known map[PackagedFunc]AbandonKind
}

// KnownAbandons builds the abandon catalog, merging custom entries over
// the predefined set.
func KnownAbandons(custom map[PackagedFunc]AbandonKind) *Abandons {
	predefined := map[PackagedFunc]AbandonKind{
		// Stdlib.
		{PkgPath: "builtin", Name: "panic"}:  AbandonKindSilent,
		{PkgPath: "os", Name: "Exit"}:        AbandonKindSilent,
		{PkgPath: "runtime", Name: "Goexit"}: AbandonKindSilent,
		{PkgPath: "log", Name: "Fatal"}:      AbandonKindFormat,
		{PkgPath: "log", Name: "Fatalf"}:     AbandonKindFormat,
		{PkgPath: "log", Name: "Fatalln"}:    AbandonKindFormat,
		{PkgPath: "log", Name: "Panic"}:      AbandonKindFormat,
		{PkgPath: "log", Name: "Panicf"}:     AbandonKindFormat,
		{PkgPath: "log", Name: "Panicln"}:    AbandonKindFormat,

		// Zap.
		{PkgPath: "go.uber.org/zap", Name: "DPanic"}: AbandonKindZap,
		{PkgPath: "go.uber.org/zap", Name: "Panic"}:  AbandonKindZap,
		{PkgPath: "go.uber.org/zap", Name: "Fatal"}:  AbandonKindZap,

		// My bias again!
		{PkgPath: "github.com/sirkon/message", Name: "Fatal"}:     AbandonKindFormat,
		{PkgPath: "github.com/sirkon/message", Name: "Fatalf"}:    AbandonKindFormat,
		{PkgPath: "github.com/sirkon/message", Name: "Critical"}:  AbandonKindFormat,
		{PkgPath: "github.com/sirkon/message", Name: "Criticalf"}: AbandonKindFormat,
	}

	merged := maps.Clone(predefined)
	maps.Insert(merged, maps.All(custom))

	return &Abandons{known: merged}
}

// Len returns the number of catalogued abandon functions.
func (a *Abandons) Len() int { return len(a.known) }

// Kind reports the abandon signature kind of the given function.
func (a *Abandons) Kind(fn PackagedFunc) (AbandonKind, bool) {
	k, ok := a.known[fn]
	return k, ok
}
