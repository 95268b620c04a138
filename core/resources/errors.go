package resources

import "errors"

// Sentinel errors for asset resolution.
var (
	// ErrInvalidName indicates the asset name is empty, absolute or escapes
	// the search roots.
	ErrInvalidName = errors.New("invalid asset name")

	// ErrUnknownCategory indicates an asset category outside the known set.
	ErrUnknownCategory = errors.New("unknown asset category")

	// ErrNotFound indicates that no candidate path exists for the asset.
	ErrNotFound = errors.New("asset not found")

	// ErrOpen indicates the resolved file could not be opened.
	ErrOpen = errors.New("failed to open file")

	// ErrRead indicates an I/O error while reading the resolved file.
	ErrRead = errors.New("failed to read file")

	// ErrArchiveOpen indicates the resolved file is not a readable zip archive.
	ErrArchiveOpen = errors.New("failed to read zip archive")

	// ErrEntryRead indicates an archive entry could not be decompressed.
	ErrEntryRead = errors.New("failed to read zip entry")

	// ErrNoMatchingEntry indicates the archive holds no entry with the
	// requested extension.
	ErrNoMatchingEntry = errors.New("no matching zip entry")

	// ErrBaseDir indicates the packaged-resource base directory could not be
	// determined.
	ErrBaseDir = errors.New("packaged resource directory unavailable")

	// ErrProjectRoot indicates dev mode was requested without a project root.
	ErrProjectRoot = errors.New("project root required in dev mode")
)

// IsArchiveError reports whether err comes from reading a model archive
// rather than from locating or opening it.
func IsArchiveError(err error) bool {
	return errors.Is(err, ErrArchiveOpen) ||
		errors.Is(err, ErrEntryRead) ||
		errors.Is(err, ErrNoMatchingEntry)
}
