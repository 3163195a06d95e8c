package converters

import (
	"os"

	"github.com/latticeconf/coordinate/spi"
)

// File resolves raw as a filesystem path, grounded on
// StringToFileConverter. Nil converts to the zero os.FileInfo-less value:
// an empty string path. No stat or existence check is performed here;
// callers that need the file to exist should stat the returned path
// themselves — matching the original's lazy java.io.File semantics.
type File struct{}

func (File) Type() spi.TypeDescriptor { return spi.TypeFile }

func (File) Convert(raw *string) (string, error) {
	if raw == nil {
		return "", nil
	}
	return os.ExpandEnv(*raw), nil
}
