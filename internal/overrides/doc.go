// Package overrides locates the project root and loads the shared override
// file that the root build target may provide.
//
// Exactly one override file exists per project: cfg.toml at the project root.
// Its top level maps component identities to flat tables of field overrides:
//
//	[compa]
//	buffer_size = 4096
//	choice = "Other"
//
//	[compb]
//	greeting = "Guten tag!"
//
// Root discovery is a heuristic. The build pipeline supplies an output
// directory hint and the SentinelLocator walks upward until it reaches the
// reserved output-root directory, then steps one level above it. The heuristic
// is pluggable behind the RootLocator interface; callers that know the root
// can supply it directly via StaticLocator and skip the walk.
//
// Loading is deliberately lenient: a missing file, like a missing component
// table, means "no override data" and is never an error here. A file that
// exists but fails to parse is reported as an error so the resolution engine
// can decide between lenient fallback and strict failure.
package overrides
