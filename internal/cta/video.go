package cta

// SVD is a Short Video Descriptor.
type SVD struct {
	VIC    uint8
	Native bool
}

// parseSVD decodes one raw descriptor byte. Reserved values return false.
func parseSVD(raw byte) (SVD, bool) {
	switch {
	case raw == 0 || raw == 128 || raw >= 254:
		return SVD{}, false
	case raw <= 127 || raw >= 193:
		return SVD{VIC: raw}, true
	default:
		return SVD{VIC: raw & 0x7F, Native: true}, true
	}
}

func (d *decoder) parseSVDs(data []byte, name string) ([]SVD, error) {
	if len(data) == 0 {
		d.log.Add("%s: Empty Data Block", name)
	}
	if len(data) > MaxSVDs {
		return nil, invalidf("%s: %d descriptors exceed %d", name, len(data), MaxSVDs)
	}

	svds := make([]SVD, 0, len(data))
	for _, raw := range data {
		svd, ok := parseSVD(raw)
		if !ok {
			d.log.AddBefore(3, "%s: Unknown VIC %d.", name, raw)
			continue
		}
		svds = append(svds, svd)
	}
	return svds, nil
}

// YCbCr420CapMap lists which SVDs of the Video Data Blocks also support
// YCbCr 4:2:0 sampling.
type YCbCr420CapMap struct {
	all    bool
	bitmap []byte
}

const maxCapMapBytes = 63

func parseYCbCr420CapMap(data []byte) *YCbCr420CapMap {
	if len(data) == 0 {
		return &YCbCr420CapMap{all: true}
	}
	n := min(len(data), maxCapMapBytes)
	bitmap := make([]byte, n)
	copy(bitmap, data[:n])
	return &YCbCr420CapMap{bitmap: bitmap}
}

// Supported reports whether the SVD at svdIndex, counted across all Video
// Data Blocks in order, supports YCbCr 4:2:0.
func (m *YCbCr420CapMap) Supported(svdIndex int) bool {
	if m.all {
		return true
	}
	if svdIndex < 0 {
		return false
	}
	byteIndex := svdIndex / 8
	if byteIndex >= len(m.bitmap) {
		return false
	}
	return m.bitmap[byteIndex]&(1<<(svdIndex%8)) != 0
}

// All reports whether every SVD supports YCbCr 4:2:0.
func (m *YCbCr420CapMap) All() bool { return m.all }
