package util

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
)

// FindFilesWithPatterns returns the files under directory whose names match
// the regular expression pattern, optionally descending into subdirectories.
func FindFilesWithPatterns(directory string, pattern string, recursive bool) ([]string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %v", pattern, err)
	}

	dirInfo, err := os.Stat(directory)
	if err != nil {
		return nil, fmt.Errorf("cannot access directory %q: %v", directory, err)
	}
	if !dirInfo.IsDir() {
		return nil, fmt.Errorf("%q is not a directory", directory)
	}

	var matchedFiles []string
	fsys := os.DirFS(directory)
	err = fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if !recursive && path != "." {
				return fs.SkipDir
			}
			return nil
		}
		if re.MatchString(d.Name()) {
			matchedFiles = append(matchedFiles, filepath.Join(directory, path))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %q: %v", directory, err)
	}

	return matchedFiles, nil
}
