package wslpath

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	// ErrRelativePath is returned if the provided path is not
	// absolute according to the rules of its source syntax. Note
	// that on the Windows side a path that merely starts with a
	// separator ("\foo") is still relative, as it can only be
	// resolved by consulting the working directory's drive.
	ErrRelativePath = status.Error(codes.InvalidArgument, "Path is relative, while an absolute path was expected")

	// ErrInvalidPrefix is returned if the provided path is absolute,
	// but its prefix does not match any of the supported forms:
	// a Windows path whose prefix is neither a drive letter nor the
	// loopback share, or a WSL path that does not start with
	// "/mnt/" followed by a single drive letter.
	ErrInvalidPrefix = status.Error(codes.Unimplemented, "Path has an unsupported prefix")
)
