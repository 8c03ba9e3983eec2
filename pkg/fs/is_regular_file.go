package fs

import "os"

// IsRegularFile checks if the path is a regular file.
// Symlinks are not followed: a symlink to a regular file reports false,
// so callers never copy through links.
func (f *realFS) IsRegularFile(path string) (bool, error) {
	info, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}
