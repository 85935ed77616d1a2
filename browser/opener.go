// Package browser opens saved articles in the user's default browser.
package browser

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/mread"
	"github.com/pkg/browser"
)

// Ensure Opener implements mread.Opener at compile time.
var _ mread.Opener = (*Opener)(nil)

// Opener opens local files with the platform's default handler.
type Opener struct {
	open func(path string) error
}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{open: browser.OpenFile}
}

// Open opens the file at path. Returns ENOTFOUND if it does not exist.
func (o *Opener) Open(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	if _, err := os.Stat(abs); errors.Is(err, os.ErrNotExist) {
		return mread.Errorf(mread.ENOTFOUND, "file not found: %s", abs)
	} else if err != nil {
		return err
	}
	if err := o.open(abs); err != nil {
		return fmt.Errorf("open %s in browser: %w", abs, err)
	}
	return nil
}
