//go:build !amd64 && !arm64

package hwy

func init() {
	// Other architectures use the scalar width.
	setScalarMode()
}
