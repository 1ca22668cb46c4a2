// Package manifest loads realm descriptions into ir.Realm values.
//
// Two formats are accepted, selected by file extension: CUE (.cue) parsed
// through the CUE SDK's Go API, and YAML (.yaml/.yml) decoded strictly so
// field typos are rejected. Both produce the same ir.Realm; the generator
// never sees which format a realm came from.
package manifest
