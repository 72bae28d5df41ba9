package core

// Image is a linear-color framebuffer stored in row-major order, top row first
type Image struct {
	Width  int
	Height int
	Pixels []Vec3
}

// NewImage allocates a black image of the given size
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]Vec3, width*height),
	}
}

// At returns the color at column x, row y
func (img *Image) At(x, y int) Vec3 {
	return img.Pixels[y*img.Width+x]
}

// Set stores the color at column x, row y
func (img *Image) Set(x, y int, c Vec3) {
	img.Pixels[y*img.Width+x] = c
}
