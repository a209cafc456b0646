//go:build !linux

package proctitle

// Set rewrites os.Args[0] only.
func Set(title string) error {
	_, err := apply(title)
	return err
}
