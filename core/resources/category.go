package resources

import (
	"fmt"
	"strings"
)

// ModelExtension is the entry suffix extracted from model archives.
const ModelExtension = ".fbx"

// Category selects the subdirectory an asset lives in and how its file is read.
type Category int

const (
	// Audio assets are returned as stored.
	Audio Category = iota + 1
	// Models are zip archives wrapping a single FBX scene.
	Models
)

// Categories lists every known category.
var Categories = []Category{Audio, Models}

// ParseCategory converts a category name ("audio", "models") to a Category.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "audio":
		return Audio, nil
	case "models", "model":
		return Models, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
}

// String returns the category's directory name.
func (c Category) String() string {
	switch c {
	case Audio:
		return "audio"
	case Models:
		return "models"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Dir is the subdirectory searched for this category.
func (c Category) Dir() string {
	return c.String()
}

// Zipped reports whether files of this category are zip archives.
func (c Category) Zipped() bool {
	return c == Models
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c == Audio || c == Models
}

func (c Category) noun() string {
	if c == Models {
		return "model zip"
	}
	return c.String() + " file"
}
