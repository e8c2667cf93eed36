//go:build !windows

package status

// EncodeIcon encodes the state icon in the format the tray expects.
func EncodeIcon(paused bool) ([]byte, error) {
	return EncodePNG(IconImage(paused), IconWidth, IconHeight)
}
