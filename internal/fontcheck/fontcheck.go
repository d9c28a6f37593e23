// Package fontcheck locates installed font files by family name.
// It only inspects file names in the platform font directories; it does not
// parse font tables, so a match means "probably installed".
package fontcheck

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// fontExtensions lists the file types considered font files.
var fontExtensions = map[string]bool{
	".ttf": true,
	".ttc": true,
	".otf": true,
	".otc": true,
}

// knownFiles maps lower-cased family names to file name stems shipped by
// the vendor. Families not listed fall back to their name with spaces removed.
var knownFiles = map[string][]string{
	"microsoft yahei": {"msyh"},
	"微软雅黑":            {"msyh"},
	"simsun":          {"simsun"},
	"宋体":              {"simsun"},
	"simhei":          {"simhei"},
	"黑体":              {"simhei"},
	"kaiti":           {"simkai"},
	"楷体":              {"simkai"},
	"times new roman": {"times"},
	"courier new":     {"cour"},
	"arial":           {"arial"},
	"calibri":         {"calibri"},
}

// Finder searches a list of directories for font files.
type Finder struct {
	Dirs []string
}

// New returns a Finder over the font directories of the current platform.
func New() *Finder {
	return &Finder{Dirs: DefaultDirs(runtime.GOOS)}
}

// DefaultDirs returns the system and per-user font directories for goos.
func DefaultDirs(goos string) []string {
	home, _ := os.UserHomeDir()
	var dirs []string

	switch goos {
	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = `C:\Windows`
		}
		dirs = append(dirs, filepath.Join(windir, "Fonts"))
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			dirs = append(dirs, filepath.Join(local, "Microsoft", "Windows", "Fonts"))
		}
	case "darwin":
		dirs = append(dirs, "/System/Library/Fonts", "/Library/Fonts")
		if home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}
	default:
		dirs = append(dirs, "/usr/share/fonts", "/usr/local/share/fonts")
		if data := os.Getenv("XDG_DATA_HOME"); data != "" {
			dirs = append(dirs, filepath.Join(data, "fonts"))
		}
		if home != "" {
			dirs = append(dirs,
				filepath.Join(home, ".local", "share", "fonts"),
				filepath.Join(home, ".fonts"))
		}
	}
	return dirs
}

// Find returns the first font file matching family. Missing or unreadable
// directories are skipped.
func (f *Finder) Find(family string) (string, bool) {
	stems := candidateStems(family)
	if len(stems) == 0 {
		return "", false
	}

	var match string
	for _, dir := range f.Dirs {
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() && path != dir {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() || !fontExtensions[strings.ToLower(filepath.Ext(path))] {
				return nil
			}
			if matchesStem(d.Name(), stems) {
				match = path
				return fs.SkipAll
			}
			return nil
		})
		if match != "" {
			return match, true
		}
	}
	return "", false
}

// candidateStems returns the lower-cased file name stems that identify family.
func candidateStems(family string) []string {
	key := strings.ToLower(strings.TrimSpace(family))
	if key == "" {
		return nil
	}
	if stems, ok := knownFiles[key]; ok {
		return stems
	}
	return []string{strings.ReplaceAll(key, " ", "")}
}

// matchesStem reports whether a font file name starts with one of stems,
// ignoring case, spaces, hyphens and underscores ("NotoSans-Bold.ttf"
// matches "notosans").
func matchesStem(name string, stems []string) bool {
	base := strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))
	base = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(base)
	for _, stem := range stems {
		if strings.HasPrefix(base, stem) {
			return true
		}
	}
	return false
}
