package vision

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// minImageDimension is the smallest usable width or height in pixels.
// Anything smaller carries too little detail for condition analysis.
const minImageDimension = 100

// ValidateImage reports whether the image data is decodable and large
// enough for analysis.
func ValidateImage(imageData []byte) bool {
	if len(imageData) == 0 {
		return false
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(imageData))
	if err != nil {
		return false
	}

	return cfg.Width >= minImageDimension && cfg.Height >= minImageDimension
}
