// Package artifact locates the build output to upload.
//
// The build places exactly one zip in the output directory; Find selects
// it deterministically (lexicographic order) and reports any extra
// matches so the caller can warn instead of silently picking one.
package artifact
