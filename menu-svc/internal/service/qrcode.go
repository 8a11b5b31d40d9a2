package service

import (
	"github.com/skip2/go-qrcode"
)

type DefaultQREncoder struct {
	Size int
}

func (e DefaultQREncoder) Encode(content string) ([]byte, error) {
	size := e.Size
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(content, qrcode.Medium, size)
}
