package warnmap

import (
	"bufio"
	"fmt"
	"io"
)

// Write emits m as space-delimited rows. A positive width right-aligns the
// status column to that many characters; width <= 0 writes it unpadded.
func Write(w io.Writer, m *WarnMap, width int) error {
	if width < 1 {
		width = 1
	}
	bw := bufio.NewWriter(w)
	for _, r := range m.Records {
		if _, err := fmt.Fprintf(bw, "%d %d %d %*d", r.Sector, r.IY, r.IZ, width, r.Status); err != nil {
			return err
		}
		for _, x := range r.Extra {
			if _, err := fmt.Fprintf(bw, " %d", x); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
