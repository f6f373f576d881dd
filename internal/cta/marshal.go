package cta

// Enums marshal as their display names so YAML and JSON reports stay
// readable.

func (t DataBlockTag) MarshalText() ([]byte, error) { return []byte(t.String()), nil }
func (f AudioFormat) MarshalText() ([]byte, error) { return []byte(f.String()), nil }
func (l MPEGH3DLevel) MarshalText() ([]byte, error) { return []byte(l.String()), nil }
func (s MPEGSurroundSignaling) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
func (t InfoFrameType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }
func (r PictureAspectRatio) MarshalText() ([]byte, error) { return []byte(r.String()), nil }
func (p VideoSyncPolarity) MarshalText() ([]byte, error) { return []byte(p.String()), nil }
func (s OverUnderscan) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
func (u TransferUsage) MarshalText() ([]byte, error) { return []byte(u.String()), nil }
func (t DDDBInterfaceType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }
func (c DDDBContentProtection) MarshalText() ([]byte, error) { return []byte(c.String()), nil }
func (o DDDBDefaultOrientation) MarshalText() ([]byte, error) { return []byte(o.String()), nil }
func (r DDDBRotationCap) MarshalText() ([]byte, error) { return []byte(r.String()), nil }
func (z DDDBZeroPixelLocation) MarshalText() ([]byte, error) { return []byte(z.String()), nil }
func (s DDDBScanDirection) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
func (l DDDBSubpixelLayout) MarshalText() ([]byte, error) { return []byte(l.String()), nil }
func (t DDDBDitheringType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }
func (c DDDBFrameRateConversion) MarshalText() ([]byte, error) { return []byte(c.String()), nil }
func (t DDDBResponseTimeTransition) MarshalText() ([]byte, error) { return []byte(t.String()), nil }
