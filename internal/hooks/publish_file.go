// Package hooks contains I/O hooks invoked around publish operations.
package hooks

import (
	"io"
	"os"

	"github.com/mityas/tk-core/internal/core/domain"
	"go.trai.ch/zerr"
)

// CopyFileReadOnly copies source to target and marks the target read-only,
// so a published file cannot be modified in place afterwards.
func CopyFileReadOnly(source, target string) error {
	src, err := os.Open(source) //nolint:gosec // hook operates on caller-supplied paths
	if err != nil {
		return zerr.With(
			zerr.Wrap(err, domain.ErrHookCopyFailed.Error()),
			"source", source,
		)
	}
	defer func() { _ = src.Close() }()

	dst, err := os.Create(target) //nolint:gosec // hook operates on caller-supplied paths
	if err != nil {
		return zerr.With(
			zerr.Wrap(err, domain.ErrHookCopyFailed.Error()),
			"target", target,
		)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return zerr.With(
			zerr.With(
				zerr.Wrap(err, domain.ErrHookCopyFailed.Error()),
				"source", source,
			),
			"target", target,
		)
	}
	if err := dst.Close(); err != nil {
		return zerr.With(
			zerr.Wrap(err, domain.ErrHookCopyFailed.Error()),
			"target", target,
		)
	}

	if err := os.Chmod(target, 0o444); err != nil {
		return zerr.With(
			zerr.Wrap(err, "failed to mark published file read-only"),
			"target", target,
		)
	}
	return nil
}
