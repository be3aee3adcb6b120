// Package extattr provides typed access to the extended attributes of a
// filesystem object.
//
// A Store is bound to a single path and reads and writes raw byte values by
// attribute name. Missing attributes are reported as absence rather than as
// errors, and Remove is idempotent. Attribute copy policy flags are encoded
// into the attribute name itself (see Flags and FlagCodec).
//
// Structured values are stored as binary property lists through
// GetStructured and SetStructured. A Name binds a raw attribute name to a
// Codec so the same descriptor can be used to read and write a typed value
// on any number of stores:
//
//	var Creator = extattr.StringName("com.example.creator")
//
//	store := extattr.NewStore("/tmp/report.pdf")
//	if err := Creator.Set(store, extattr.Ptr("reports")); err != nil {
//		return err
//	}
//	creator, err := Creator.Get(store)
//
// Nothing in this package logs; every failure is returned to the caller.
package extattr
