// Package registry assembles normalized items into the structure the emitter renders.
//
// A Registry keeps the items in dataset order (for the variable declarations)
// and a lookup table indexed by id whose length is max(id)+1. Ids need not be
// contiguous: every index without an item is an absent slot and stays in the
// table so that populated slots keep their positions.
//
// # Failures
//
//   - *CollisionError: two names derive the same identifier (for example
//     "foo_bar" and "foo-bar" both derive FooBar), or a name derives a symbol
//     reserved for the generated file itself.
//   - *DuplicateIDError: two records share an id.
//
// Neither is resolved automatically; renaming or dropping an entry would make
// the generated table disagree with the upstream catalog.
package registry
