// Package docstore is the adapter for the remote collection-oriented
// document store.
//
// The store speaks a typed field-map encoding rather than native JSON: every
// value travels as a single-key object such as {"stringValue": "x"} or
// {"integerValue": "42"}. The codec in this package is the only code aware
// of that encoding; everything above it works with plain Go values.
//
// Contract notes:
//   - decode(encode(x)) == x for every canonical value (see Encode).
//   - Updates carry an explicit field mask and touch only the listed
//     top-level fields.
//   - Arrays are replaced wholesale on update, never merged element-wise.
//     A caller changing one element of a list must resend the entire list;
//     the per-entity stores therefore always write full collections
//     (members, keyResults, ...) from local state.
package docstore
