package color

// expand5 maps a 5-bit channel to 8 bits with rounding (v*255/31).
var expand5 [32]uint8

// expand6 maps a 6-bit channel to 8 bits with rounding (v*255/63).
var expand6 [64]uint8

func init() {
	for i := range expand5 {
		expand5[i] = uint8((i*255 + 15) / 31)
	}
	for i := range expand6 {
		expand6[i] = uint8((i*255 + 31) / 63)
	}
}
