// SPDX-License-Identifier: EPL-2.0

package id3v2

import (
	"testing"

	"github.com/ik5/id3al/internal/id3test"
)

func FuzzParse_NoPanic(f *testing.F) {
	f.Add(id3test.Tag(4, 0, 8, titleFrame4("seed")))
	f.Add(id3test.Tag(3, 0x80, 0, id3test.Frame3("TIT2", 0, 0x80, []byte{0, 0, 0, 4, 0x78, 0x9C})))
	f.Add(id3test.Tag(2, 0, 0, id3test.Frame2("TT2", []byte{0, 'x'})))
	f.Add(append(id3test.Header(4, 0, 0x50, 6), extV4(0)...))

	f.Fuzz(func(t *testing.T, data []byte) {
		tag, err := Loader{VerifyCRC: true}.Parse(data)
		if err != nil {
			return
		}
		if tag.End() > int64(len(data)) {
			t.Fatalf("tag end %d beyond input %d", tag.End(), len(data))
		}

		it := tag.Frames()
		for {
			last := it.Offset()
			fr, err := it.Next()
			if err != nil {
				break
			}
			if it.Offset() <= last {
				t.Fatalf("iterator did not advance: %d -> %d", last, it.Offset())
			}
			if fr.Offset != last {
				t.Fatalf("frame offset %d, cursor was %d", fr.Offset, last)
			}
		}
	})
}
