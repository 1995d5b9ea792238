package digest

import (
	"os"

	"github.com/hashbox/hashbox/internal/utils"
)

// SumFile streams the file at path through the algorithm and returns the
// lowercase hex digest and the file size in bytes.
func SumFile(algo Algorithm, path string) (string, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer utils.CloseOrWarn(f)

	return SumReader(algo, f)
}
