package tilemap

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bodgit/tilemap/asm"
	"github.com/sirupsen/logrus"
)

// path turns a slash-separated root-relative path into a real one.
func (p *Project) path(rel string) string {
	return filepath.Join(p.root, filepath.FromSlash(rel))
}

// fmtName substitutes name for every %s in format. A format without one is
// used as is.
func fmtName(format, name string) string {
	return strings.ReplaceAll(format, "%s", name)
}

func (p *Project) mapPath(format, name string) string {
	return p.path(fmtName(format, name))
}

// readFile returns the contents of file, or false if it couldn't be read.
func (p *Project) readFile(file string) ([]byte, bool) {
	b, err := ioutil.ReadFile(file)
	if err != nil {
		p.logger.WithFields(logrus.Fields{
			"path":  file,
			"error": err,
		}).Warn("Could not open file")
		return nil, false
	}
	return b, true
}

// readTextFile returns the contents of file or an empty string.
func (p *Project) readTextFile(file string) string {
	b, _ := p.readFile(file)
	return string(b)
}

func (p *Project) parseFile(file string) asm.Commands {
	return asm.Parse(p.readTextFile(file))
}

// pool returns the parsed commands of one of the shared text files. These
// are read many times over during a load so are cached.
func (p *Project) pool(rel string) asm.Commands {
	file := p.path(rel)
	if cmds, ok := p.pools.Get(file); ok {
		return cmds
	}
	cmds := p.parseFile(file)
	p.pools.Set(file, cmds, int64(len(cmds)+1))
	p.pools.Wait()
	return cmds
}

// writeFile writes b to file, creating any missing parent directories.
func (p *Project) writeFile(file string, b []byte) error {
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return fmt.Errorf("tilemap: writing %s: %w", file, err)
	}
	if err := ioutil.WriteFile(file, b, 0o644); err != nil {
		return fmt.Errorf("tilemap: writing %s: %w", file, err)
	}
	p.pools.Del(file)
	p.logger.WithField("path", file).Debug("Wrote file")
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
