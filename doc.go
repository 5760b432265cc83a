// Package solid provides two small samples of SOLID object-oriented design
// expressed in Go.
//
// # Open/Closed
//
// [Shape] is a single-method capability implemented by [Rectangle],
// [Circle] and the zero-area placeholder [Base]. New shapes extend the set
// by implementing [Shape]; nothing that consumes a Shape changes:
//
//	r := solid.NewRectangle(3, 4)
//	c := solid.NewCircle(2)
//	fmt.Println(solid.ShapeArea(r), solid.ShapeArea(c))
//
// A [Registry] maps kind names to constructors so callers can build shapes
// by name. Kinds are added with [Registry.Register]; the internal/runtime
// package uses this to add kinds defined as Risor scripts.
//
// Constructors never reject input. Negative dimensions produce a negative
// or otherwise meaningless area. Use [Validate], or a Registry created with
// [WithStrict], to reject them with [ErrInvalidArgument].
//
// # Single Responsibility
//
// [UserDataHolder] owns one string and nothing else:
//
//	var h solid.UserDataHolder
//	h.SetUserData("alice")
//	fmt.Println(h.UserData())
//
// None of these types synchronize. Share them across goroutines only with
// external locking.
package solid
