// Package winpath provides lexical operations over Windows-model path strings.
//
// Paths may carry a drive prefix (`C:`) and may use either `/` or `\` as a
// separator. Every operation accepts both separators when reading, while
// [Clean] writes back a single canonical separator. Operations never touch
// the file system and never resolve `.` or `..` segments.
//
// Each buffer role (full path, drive, extension, name) has a bounded capacity
// described by [Limits]. Inputs and outputs that exceed a capacity are cut to
// it; no operation fails because of length.
//
// Components that may be missing, the drive and the directory, are returned
// with a second boolean result so that "not found" stays distinct from a
// found-but-empty value.
package winpath
