package rng

import (
	"bytes"
	"io"
)

func BuildCharset(lowers, uppers, numbers, symbols bool) []byte {
	var b []byte
	if lowers {
		b = append(b, []byte("abcdefghijklmnopqrstuvwxyz")...)
	}
	if uppers {
		b = append(b, []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ")...)
	}
	if numbers {
		b = append(b, []byte("0123456789")...)
	}
	if symbols {
		b = append(b, []byte("!#$%&()*+,-./:;<=>?@[]^_{|}~")...)
	}
	return b
}

// RandomString builds a string of the given size from charset, picking each
// character through the unbiased bounded sampler.
func RandomString(r io.Reader, h *Health, charset []byte, size int) (string, error) {
	var out bytes.Buffer
	out.Grow(size)

	for i := 0; i < size; i++ {
		index, err := Uint32n(r, h, uint32(len(charset)))
		if err != nil {
			return "", err
		}
		out.WriteByte(charset[int(index)])
	}
	return out.String(), nil
}
