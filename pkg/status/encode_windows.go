//go:build windows

package status

// EncodeIcon encodes the state icon in the format the tray expects. The
// Windows notification area only loads ICO data.
func EncodeIcon(paused bool) ([]byte, error) {
	return EncodeICO(IconImage(paused), IconWidth, IconHeight)
}
