// Package testutil provides fakes for the capabilities behaviors execute
// against, so tests never spawn real programs or touch system files.
//
// Key components:
//   - MockRunner: records argv lists and answers with a scripted error
//   - ExitStatus: an error carrying a child exit status, like *exec.ExitError
//   - NewMemoryFS: an afero-backed FS seeded with files
//   - CanonicalTempDir: a t.TempDir with symlinks resolved
package testutil
