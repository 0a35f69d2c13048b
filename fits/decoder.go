package fits

import (
	"io"

	"github.com/astrogo/fitsio"
	"github.com/rickbassham/hotfly/common"
)

// Decoder reads back the headers of a complete FITS stream with a full FITS
// reader. It is used to check rewritten files.
type Decoder struct {
	rdr io.Reader
}

func NewDecoder(rdr io.Reader) *Decoder {
	return &Decoder{rdr: rdr}
}

// ReadHeaders returns the keywords of every HDU in file order.
func (d *Decoder) ReadHeaders() (hs []common.Header, err error) {
	fit, err := fitsio.Open(d.rdr)
	if err != nil {
		return nil, err
	}
	defer fit.Close()

	for _, hdu := range fit.HDUs() {
		hdr := hdu.Header()

		h := common.Header{}
		for _, key := range hdr.Keys() {
			h[key] = hdr.Get(key).Value
		}

		hs = append(hs, h)
	}

	return hs, nil
}
