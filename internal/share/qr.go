package share

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// MaxCapacity is the largest link, in characters, any supported symbol
// holds (version 40).
const MaxCapacity = 2953

// DefaultMaxVersion keeps symbols small enough to scan reliably from a
// phone screen.
const DefaultMaxVersion = 25

type versionCapacity struct {
	version int
	chars   int
}

// capacities are the rated character capacities per symbol version at the
// low error-correction tier.
var capacities = []versionCapacity{
	{1, 20}, {2, 38}, {3, 61}, {4, 90}, {5, 122}, {6, 154}, {7, 178}, {8, 221},
	{9, 262}, {10, 311}, {15, 520}, {20, 858}, {25, 1286}, {30, 1732}, {35, 2188},
	{40, MaxCapacity},
}

// CapacityError reports a link that cannot be rendered as a scannable code.
type CapacityError struct {
	Size       int // link length in characters
	Limit      int // largest length the active configuration accepts
	Version    int // table version the link would need, 0 when no allowed version fits
	MaxVersion int
}

func (e *CapacityError) Error() string {
	if e.Version == 0 {
		return fmt.Sprintf("order data too large (%d chars); the limit is %d, try removing some detail", e.Size, e.Limit)
	}
	return fmt.Sprintf("order data too large for a scannable code (%d chars needs version %d, limit is version %d / %d chars)",
		e.Size, e.Version, e.MaxVersion, e.Limit)
}

// VersionFor returns the smallest symbol version whose rated capacity is at
// least length.
func VersionFor(length int) (int, error) {
	for _, c := range capacities {
		if length <= c.chars {
			return c.version, nil
		}
	}
	return 0, &CapacityError{Size: length, Limit: MaxCapacity, MaxVersion: 40}
}

// capacityOf is the rated capacity of the largest table version <= v.
func capacityOf(v int) int {
	limit := capacities[0].chars
	for _, c := range capacities {
		if c.version > v {
			break
		}
		limit = c.chars
	}
	return limit
}

// Code is a rendered share symbol.
type Code struct {
	Link    string
	Size    int
	Version int
	qr      *qrcode.QRCode
}

// PNG renders the symbol as a PNG image size pixels wide.
func (c *Code) PNG(size int) ([]byte, error) {
	return c.qr.PNG(size)
}

// Terminal renders the symbol with half-block characters for a terminal.
func (c *Code) Terminal() string {
	return c.qr.ToSmallString(false)
}

// SVG renders the symbol as an SVG document with cell-pixel modules.
func (c *Code) SVG(cell int) string {
	if cell <= 0 {
		cell = 4
	}
	bitmap := c.qr.Bitmap()
	n := len(bitmap)
	px := n * cell

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">`, px, px, px, px)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="#ffffff"/><path fill="#000000" d="`, px, px)
	for y, row := range bitmap {
		for x, dark := range row {
			if dark {
				fmt.Fprintf(&b, "M%d,%dh%dv%dh-%dz", x*cell, y*cell, cell, cell, cell)
			}
		}
	}
	b.WriteString(`"/></svg>`)
	return b.String()
}

// Encoder renders share links as QR codes.
type Encoder struct {
	MaxVersion int
	Level      qrcode.RecoveryLevel
}

// NewEncoder returns an Encoder capped at maxVersion with low error
// correction, the tier the capacity table is rated at. Out-of-range caps fall back to DefaultMaxVersion.
func NewEncoder(maxVersion int) *Encoder {
	if maxVersion < 1 || maxVersion > 40 {
		maxVersion = DefaultMaxVersion
	}
	return &Encoder{MaxVersion: maxVersion, Level: qrcode.Low}
}

// QR renders link. Links longer than MaxCapacity, or needing a version
// above the cap, fail with *CapacityError; nothing is truncated.
func (e *Encoder) QR(link string) (*Code, error) {
	size := len(link)
	version, err := VersionFor(size)
	if err != nil {
		return nil, &CapacityError{Size: size, Limit: e.Limit(), MaxVersion: e.MaxVersion}
	}
	if version > e.MaxVersion {
		return nil, &CapacityError{Size: size, Limit: e.Limit(), Version: version, MaxVersion: e.MaxVersion}
	}

	// The low versions of the table are rated for alphanumeric content;
	// links carry lowercase so the byte payload may need a larger symbol.
	for v := version; v <= e.MaxVersion; v++ {
		q, err := qrcode.NewWithForcedVersion(link, v, e.Level)
		if err != nil {
			continue
		}
		return &Code{Link: link, Size: size, Version: v, qr: q}, nil
	}
	return nil, &CapacityError{Size: size, Limit: e.Limit(), MaxVersion: e.MaxVersion}
}

// Limit is the longest link the encoder accepts: the rated capacity of
// MaxVersion, or the byte capacity of that symbol at Level when smaller.
func (e *Encoder) Limit() int {
	limit := capacityOf(e.MaxVersion)
	if b := byteCapacity(e.MaxVersion, e.Level); b < limit {
		limit = b
	}
	return limit
}

// byteCapacity finds the longest byte-mode payload a symbol of version v
// holds at level.
func byteCapacity(v int, level qrcode.RecoveryLevel) int {
	lo, hi := 0, MaxCapacity
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if _, err := qrcode.NewWithForcedVersion(strings.Repeat("a", mid), v, level); err == nil {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}
