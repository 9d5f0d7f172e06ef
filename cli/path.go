package cli

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/ardnew/deft/pkg"
)

// cacheDir returns the cache directory path used for transient files such as
// profile output.
var cacheDir = sync.OnceValue(
	func() string {
		dir, err := os.UserCacheDir()
		if err != nil {
			dir, err = os.UserHomeDir()
			if err == nil {
				dir = filepath.Join(dir, ".cache")
			} else {
				var err error
				dir, err = os.Getwd()
				if err != nil {
					dir = "."
				}
			}
		}

		return filepath.Join(dir, pkg.Name)
	},
)
