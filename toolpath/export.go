package toolpath

import (
	"bufio"
	"os"

	"github.com/jfechete/ncgen/nclog"
	"github.com/jfechete/ncgen/ncerr"
)

// Export writes the assembled program — prologue, body, epilogue, each line
// newline-terminated — to path. No partial file is retained on failure.
func (g *Generator) Export(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return ncerr.WithContext(ncerr.ErrIoFailure, "create toolpath file %q", path)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, line := range g.Lines() {
		if _, err := w.WriteString(line + "\n"); err != nil {
			os.Remove(path)
			return ncerr.WithContext(ncerr.ErrIoFailure, "write toolpath file %q", path)
		}
	}
	if err := w.Flush(); err != nil {
		os.Remove(path)
		return ncerr.WithContext(ncerr.ErrIoFailure, "flush toolpath file %q", path)
	}
	nclog.Logger().Info("toolpath exported", "run_id", g.runID, "path", path, "lines", len(g.body))
	return nil
}
