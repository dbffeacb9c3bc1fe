package imlib

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding/simplifiedchinese"
)

// HZK16 stores one 32-byte cell per GB2312 code, ordered by zone then
// position with 94 positions per zone. Each row is two bytes: left half,
// then right half.
const (
	hzkZones     = 94
	hzkPositions = 94
	hzkCellBytes = 32
)

// importHZK16 reads an HZK16 blob, maps every cell to its Unicode code
// point through GBK and stores it in the wide plane. Cells that do not
// decode to a 3-byte code point outside the private use area are skipped.
func (f *FontRegistry) importHZK16(r io.Reader) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	if len(data) == 0 {
		return 0, ErrEmptyFontData
	}
	if len(data)%hzkCellBytes != 0 {
		return 0, fmt.Errorf("%d bytes: %w", len(data), ErrWidePlaneSize)
	}

	dec := simplifiedchinese.GBK.NewDecoder()
	cells := min(len(data)/hzkCellBytes, hzkZones*hzkPositions)
	imported, skipped := 0, 0
	for i := 0; i < cells; i++ {
		code := [2]byte{byte(0xA1 + i/hzkPositions), byte(0xA1 + i%hzkPositions)}
		out, err := dec.Bytes(code[:])
		if err != nil {
			skipped++
			continue
		}
		cp, n := DecodeUTF8(out)
		if n != 3 || cp == 0xFFFD || (cp >= 0xE000 && cp <= 0xF8FF) {
			skipped++
			continue
		}

		src := data[i*hzkCellBytes : (i+1)*hzkCellBytes]
		dst := f.wideCell(cp)
		for row := range wideHeight {
			dst[row] = src[2*row]
			dst[16+row] = src[2*row+1]
		}
		imported++
	}

	if skipped > 0 {
		Logger().Warn("imlib: HZK16 cells without a Unicode mapping", "skipped", skipped)
	}
	return imported, nil
}
