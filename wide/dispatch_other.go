//go:build !amd64 && !arm64

package wide

func init() {
	// Other architectures report scalar for now.
	setScalarMode()
}
