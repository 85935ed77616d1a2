package browser

// NewOpenerFunc creates an Opener that calls open instead of the browser.
func NewOpenerFunc(open func(path string) error) *Opener {
	return &Opener{open: open}
}
