// Package io writes output files so that readers never see partial data.
//
// # Overview
//
// [WriteFile] and [WriteFileFunc] write to a temporary file in the
// destination directory and rename it over the target only after every
// byte was written and synced. On any failure the temporary file is
// removed and an existing target is left untouched:
//
//	err := io.WriteFile("tree.nfsf.svg", svg, 0o644)
//
// Failures carry the IO_ERROR code from [errors].
//
// [errors]: github.com/matzehuels/nfsf/pkg/errors
package io
