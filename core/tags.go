package core

// These empty structs serve as declarative annotations embedded within user-defined
// structs to indicate CLI metadata such as the tool name, version, help exposure
// or a command description.
//
// The discovery pass uses reflection to detect these markers and fill the
// command schema accordingly. Arguments themselves are declared with Arg fields.

// === META TAGS ===

type Clifford struct{}
type Version struct{}
type Help struct{}
type Desc struct{}

// Subcommand is a marker used to indicate that a struct field represents
// a subcommand. Embed this in a sub-struct to mark it as a subcommand target.
// An explicit subcommand name may be given with a `name` tag on the marker;
// otherwise the lowercased field name is used.
//
// After parsing, the marker of the dispatched subcommand is true.
type Subcommand bool
