// Package data builds the data object templates are rendered against.
//
// Each --data item is either inline JSON or a reference. References are
// resolved like every other path argument (module, literal path or glob) and
// decoded as JSON, or as YAML for .yaml/.yml files; redis:// references read
// a JSON document from a Redis key:
//
//	redis://:secret@localhost:6379/0#site:data
//
// The merged object is built from an empty map by deep-merging all inline
// objects first and all referenced objects after, each group in the order
// given. With --stdin the object read by ReadStdin replaces the merged one.
package data
