// Package skemareg maintains two parallel views over a set of tagged object
// schemas: the originals exactly as registered, and a derived view with
// blacklisted fields removed and optional/default wrapping stripped, meant for
// structured-output generators that cannot omit fields or rely on server-side
// defaults.
//
// Design policy:
//   - Keep only public contracts in the root package; schema constructors live
//     under dsl/ and the dual-view store under registry/.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	reg := registry.New(registry.WithGlobalFilters(hideInternal))
//	_ = reg.Register(userSchema)
//	_ = reg.Register(postSchema)
//
//	u, err := reg.LLM().Union()
//	v, err := skemareg.ParseJSON(ctx, u, llmOutput)
package skemareg
