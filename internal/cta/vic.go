package cta

// PictureAspectRatio is the picture aspect ratio of a standard video format.
type PictureAspectRatio uint8

const (
	PictureAspectRatio4_3 PictureAspectRatio = iota
	PictureAspectRatio16_9
	PictureAspectRatio64_27
	PictureAspectRatio256_135
)

func (r PictureAspectRatio) String() string {
	return enumName(int(r), "4:3", "16:9", "64:27", "256:135")
}

type VideoSyncPolarity uint8

const (
	VideoSyncNegative VideoSyncPolarity = iota
	VideoSyncPositive
)

func (p VideoSyncPolarity) String() string {
	return enumName(int(p), "negative", "positive")
}

// VideoFormat is the timing of a standard video format referenced by VIC.
// Vertical values of interlaced formats are per field, except VertActive.
type VideoFormat struct {
	VIC                uint8
	HorizActive        int
	VertActive         int
	HorizFront         int
	VertFront          int
	HorizSync          int
	VertSync           int
	HorizBack          int
	VertBack           int
	HSyncPolarity      VideoSyncPolarity
	VSyncPolarity      VideoSyncPolarity
	PixelClockHz       int64
	Interlaced         bool
	PictureAspectRatio PictureAspectRatio
}

// VideoFormatFromVIC looks up a standard video format. The returned value
// points into a shared table and must not be modified.
func VideoFormatFromVIC(vic uint8) (*VideoFormat, bool) {
	f, ok := videoFormats[vic]
	return f, ok
}

type vicTiming struct {
	hActive, vActive     int
	hFront, hSync, hBack int
	vFront, vSync, vBack int
	hPositive, vPositive bool
	clockKHz             int64
	interlaced           bool
}

var videoFormats = buildVideoFormats()

func buildVideoFormats() map[uint8]*VideoFormat {
	const (
		ar4_3     = PictureAspectRatio4_3
		ar16_9    = PictureAspectRatio16_9
		ar64_27   = PictureAspectRatio64_27
		ar256_135 = PictureAspectRatio256_135
	)

	var (
		t640x480p60    = vicTiming{640, 480, 16, 96, 48, 10, 2, 33, false, false, 25175, false}
		t720x480p60    = vicTiming{720, 480, 16, 62, 60, 9, 6, 30, false, false, 27000, false}
		t1280x720p60   = vicTiming{1280, 720, 110, 40, 220, 5, 5, 20, true, true, 74250, false}
		t1920x1080i60  = vicTiming{1920, 1080, 88, 44, 148, 2, 5, 15, true, true, 74250, true}
		t1440x480i60   = vicTiming{1440, 480, 38, 124, 114, 4, 3, 15, false, false, 27000, true}
		t1440x240p60   = vicTiming{1440, 240, 38, 124, 114, 4, 3, 15, false, false, 27000, false}
		t2880x480i60   = vicTiming{2880, 480, 76, 248, 228, 4, 3, 15, false, false, 54000, true}
		t2880x240p60   = vicTiming{2880, 240, 76, 248, 228, 4, 3, 15, false, false, 54000, false}
		t1440x480p60   = vicTiming{1440, 480, 32, 124, 120, 9, 6, 30, false, false, 54000, false}
		t1920x1080p60  = vicTiming{1920, 1080, 88, 44, 148, 4, 5, 36, true, true, 148500, false}
		t720x576p50    = vicTiming{720, 576, 12, 64, 68, 5, 5, 39, false, false, 27000, false}
		t1280x720p50   = vicTiming{1280, 720, 440, 40, 220, 5, 5, 20, true, true, 74250, false}
		t1920x1080i50  = vicTiming{1920, 1080, 528, 44, 148, 2, 5, 15, true, true, 74250, true}
		t1440x576i50   = vicTiming{1440, 576, 24, 126, 138, 2, 3, 19, false, false, 27000, true}
		t1440x288p50   = vicTiming{1440, 288, 24, 126, 138, 2, 3, 19, false, false, 27000, false}
		t2880x576i50   = vicTiming{2880, 576, 48, 252, 276, 2, 3, 19, false, false, 54000, true}
		t2880x288p50   = vicTiming{2880, 288, 48, 252, 276, 2, 3, 19, false, false, 54000, false}
		t1440x576p50   = vicTiming{1440, 576, 24, 128, 136, 5, 5, 39, false, false, 54000, false}
		t1920x1080p50  = vicTiming{1920, 1080, 528, 44, 148, 4, 5, 36, true, true, 148500, false}
		t1920x1080p24  = vicTiming{1920, 1080, 638, 44, 148, 4, 5, 36, true, true, 74250, false}
		t1920x1080p25  = vicTiming{1920, 1080, 528, 44, 148, 4, 5, 36, true, true, 74250, false}
		t1920x1080p30  = vicTiming{1920, 1080, 88, 44, 148, 4, 5, 36, true, true, 74250, false}
		t2880x480p60   = vicTiming{2880, 480, 64, 248, 240, 9, 6, 30, false, false, 108000, false}
		t2880x576p50   = vicTiming{2880, 576, 48, 256, 272, 5, 5, 39, false, false, 108000, false}
		t1920x1080i50r = vicTiming{1920, 1080, 32, 168, 184, 23, 5, 57, true, false, 72000, true}
		t1920x1080i100 = vicTiming{1920, 1080, 528, 44, 148, 2, 5, 15, true, true, 148500, true}
		t1280x720p100  = vicTiming{1280, 720, 440, 40, 220, 5, 5, 20, true, true, 148500, false}
		t720x576p100   = vicTiming{720, 576, 12, 64, 68, 5, 5, 39, false, false, 54000, false}
		t1440x576i100  = vicTiming{1440, 576, 24, 126, 138, 2, 3, 19, false, false, 54000, true}
		t1920x1080i120 = vicTiming{1920, 1080, 88, 44, 148, 2, 5, 15, true, true, 148500, true}
		t1280x720p120  = vicTiming{1280, 720, 110, 40, 220, 5, 5, 20, true, true, 148500, false}
		t720x480p120   = vicTiming{720, 480, 16, 62, 60, 9, 6, 30, false, false, 54000, false}
		t1440x480i120  = vicTiming{1440, 480, 38, 124, 114, 4, 3, 15, false, false, 54000, true}
		t720x576p200   = vicTiming{720, 576, 12, 64, 68, 5, 5, 39, false, false, 108000, false}
		t1440x576i200  = vicTiming{1440, 576, 24, 126, 138, 2, 3, 19, false, false, 108000, true}
		t720x480p240   = vicTiming{720, 480, 16, 62, 60, 9, 6, 30, false, false, 108000, false}
		t1440x480i240  = vicTiming{1440, 480, 38, 124, 114, 4, 3, 15, false, false, 108000, true}
		t1280x720p24   = vicTiming{1280, 720, 1760, 40, 220, 5, 5, 20, true, true, 59400, false}
		t1280x720p25   = vicTiming{1280, 720, 2420, 40, 220, 5, 5, 20, true, true, 74250, false}
		t1280x720p30   = vicTiming{1280, 720, 1760, 40, 220, 5, 5, 20, true, true, 74250, false}
		t1920x1080p120 = vicTiming{1920, 1080, 88, 44, 148, 4, 5, 36, true, true, 297000, false}
		t1920x1080p100 = vicTiming{1920, 1080, 528, 44, 148, 4, 5, 36, true, true, 297000, false}

		t3840x2160p24 = vicTiming{3840, 2160, 1276, 88, 296, 8, 10, 72, true, true, 297000, false}
		t3840x2160p25 = vicTiming{3840, 2160, 1056, 88, 296, 8, 10, 72, true, true, 297000, false}
		t3840x2160p30 = vicTiming{3840, 2160, 176, 88, 296, 8, 10, 72, true, true, 297000, false}
		t3840x2160p50 = vicTiming{3840, 2160, 1056, 88, 296, 8, 10, 72, true, true, 594000, false}
		t3840x2160p60 = vicTiming{3840, 2160, 176, 88, 296, 8, 10, 72, true, true, 594000, false}
		t4096x2160p24 = vicTiming{4096, 2160, 1020, 88, 296, 8, 10, 72, true, true, 297000, false}
		t4096x2160p25 = vicTiming{4096, 2160, 968, 88, 128, 8, 10, 72, true, true, 297000, false}
		t4096x2160p30 = vicTiming{4096, 2160, 88, 88, 128, 8, 10, 72, true, true, 297000, false}
		t4096x2160p50 = vicTiming{4096, 2160, 968, 88, 128, 8, 10, 72, true, true, 594000, false}
		t4096x2160p60 = vicTiming{4096, 2160, 88, 88, 128, 8, 10, 72, true, true, 594000, false}

		t1680x720p24  = vicTiming{1680, 720, 1360, 40, 220, 5, 5, 20, true, true, 59400, false}
		t1680x720p25  = vicTiming{1680, 720, 1228, 40, 220, 5, 5, 20, true, true, 59400, false}
		t1680x720p30  = vicTiming{1680, 720, 700, 40, 220, 5, 5, 20, true, true, 59400, false}
		t1680x720p50  = vicTiming{1680, 720, 260, 40, 220, 5, 5, 20, true, true, 82500, false}
		t1680x720p60  = vicTiming{1680, 720, 260, 40, 220, 5, 5, 20, true, true, 99000, false}
		t1680x720p100 = vicTiming{1680, 720, 60, 40, 220, 5, 5, 95, true, true, 165000, false}
		t1680x720p120 = vicTiming{1680, 720, 60, 40, 220, 5, 5, 95, true, true, 198000, false}

		t2560x1080p24  = vicTiming{2560, 1080, 998, 44, 148, 4, 5, 11, true, true, 99000, false}
		t2560x1080p25  = vicTiming{2560, 1080, 448, 44, 148, 4, 5, 36, true, true, 90000, false}
		t2560x1080p30  = vicTiming{2560, 1080, 768, 44, 148, 4, 5, 36, true, true, 118800, false}
		t2560x1080p50  = vicTiming{2560, 1080, 548, 44, 148, 4, 5, 36, true, true, 185625, false}
		t2560x1080p60  = vicTiming{2560, 1080, 248, 44, 148, 4, 5, 11, true, true, 198000, false}
		t2560x1080p100 = vicTiming{2560, 1080, 218, 44, 148, 4, 5, 161, true, true, 371250, false}
		t2560x1080p120 = vicTiming{2560, 1080, 548, 44, 148, 4, 5, 161, true, true, 495000, false}

		t1280x720p48   = vicTiming{1280, 720, 960, 40, 220, 5, 5, 20, true, true, 90000, false}
		t1680x720p48   = vicTiming{1680, 720, 810, 40, 220, 5, 5, 20, true, true, 99000, false}
		t1920x1080p48  = vicTiming{1920, 1080, 638, 44, 148, 4, 5, 36, true, true, 148500, false}
		t2560x1080p48  = vicTiming{2560, 1080, 998, 44, 148, 4, 5, 11, true, true, 198000, false}
		t3840x2160p48  = vicTiming{3840, 2160, 1276, 88, 296, 8, 10, 72, true, true, 594000, false}
		t4096x2160p48  = vicTiming{4096, 2160, 1020, 88, 296, 8, 10, 72, true, true, 594000, false}
		t3840x2160p100 = vicTiming{3840, 2160, 1056, 88, 296, 8, 10, 72, true, true, 1188000, false}
		t3840x2160p120 = vicTiming{3840, 2160, 176, 88, 296, 8, 10, 72, true, true, 1188000, false}
		t4096x2160p100 = vicTiming{4096, 2160, 800, 88, 296, 8, 10, 72, true, true, 1188000, false}
		t4096x2160p120 = vicTiming{4096, 2160, 88, 88, 128, 8, 10, 72, true, true, 1188000, false}

		t5120x2160p24  = vicTiming{5120, 2160, 1996, 88, 296, 8, 10, 22, true, true, 396000, false}
		t5120x2160p25  = vicTiming{5120, 2160, 1696, 88, 296, 8, 10, 22, true, true, 396000, false}
		t5120x2160p30  = vicTiming{5120, 2160, 664, 88, 128, 8, 10, 22, true, true, 396000, false}
		t5120x2160p48  = vicTiming{5120, 2160, 746, 88, 296, 8, 10, 297, true, true, 742500, false}
		t5120x2160p50  = vicTiming{5120, 2160, 1096, 88, 296, 8, 10, 72, true, true, 742500, false}
		t5120x2160p60  = vicTiming{5120, 2160, 164, 88, 128, 8, 10, 72, true, true, 742500, false}
		t5120x2160p100 = vicTiming{5120, 2160, 1096, 88, 296, 8, 10, 72, true, true, 1485000, false}
		t5120x2160p120 = vicTiming{5120, 2160, 164, 88, 128, 8, 10, 72, true, true, 1485000, false}

		t7680x4320p24  = vicTiming{7680, 4320, 2552, 176, 592, 16, 20, 144, true, true, 1188000, false}
		t7680x4320p25  = vicTiming{7680, 4320, 2352, 176, 592, 16, 20, 44, true, true, 1188000, false}
		t7680x4320p30  = vicTiming{7680, 4320, 552, 176, 592, 16, 20, 44, true, true, 1188000, false}
		t7680x4320p48  = vicTiming{7680, 4320, 2552, 176, 592, 16, 20, 144, true, true, 2376000, false}
		t7680x4320p50  = vicTiming{7680, 4320, 2352, 176, 592, 16, 20, 44, true, true, 2376000, false}
		t7680x4320p60  = vicTiming{7680, 4320, 552, 176, 592, 16, 20, 44, true, true, 2376000, false}
		t7680x4320p100 = vicTiming{7680, 4320, 2112, 176, 592, 16, 20, 144, true, true, 4752000, false}
		t7680x4320p120 = vicTiming{7680, 4320, 352, 176, 592, 16, 20, 144, true, true, 4752000, false}

		t10240x4320p24  = vicTiming{10240, 4320, 1492, 176, 592, 16, 20, 594, true, true, 1485000, false}
		t10240x4320p25  = vicTiming{10240, 4320, 2492, 176, 592, 16, 20, 44, true, true, 1485000, false}
		t10240x4320p30  = vicTiming{10240, 4320, 288, 176, 296, 16, 20, 144, true, true, 1485000, false}
		t10240x4320p48  = vicTiming{10240, 4320, 1492, 176, 592, 16, 20, 594, true, true, 2970000, false}
		t10240x4320p50  = vicTiming{10240, 4320, 2492, 176, 592, 16, 20, 44, true, true, 2970000, false}
		t10240x4320p60  = vicTiming{10240, 4320, 288, 176, 296, 16, 20, 144, true, true, 2970000, false}
		t10240x4320p100 = vicTiming{10240, 4320, 2192, 176, 592, 16, 20, 144, true, true, 5940000, false}
		t10240x4320p120 = vicTiming{10240, 4320, 288, 176, 296, 16, 20, 144, true, true, 5940000, false}
	)

	entries := []struct {
		vic uint8
		t   vicTiming
		ar  PictureAspectRatio
	}{
		{1, t640x480p60, ar4_3},
		{2, t720x480p60, ar4_3},
		{3, t720x480p60, ar16_9},
		{4, t1280x720p60, ar16_9},
		{5, t1920x1080i60, ar16_9},
		{6, t1440x480i60, ar4_3},
		{7, t1440x480i60, ar16_9},
		{8, t1440x240p60, ar4_3},
		{9, t1440x240p60, ar16_9},
		{10, t2880x480i60, ar4_3},
		{11, t2880x480i60, ar16_9},
		{12, t2880x240p60, ar4_3},
		{13, t2880x240p60, ar16_9},
		{14, t1440x480p60, ar4_3},
		{15, t1440x480p60, ar16_9},
		{16, t1920x1080p60, ar16_9},
		{17, t720x576p50, ar4_3},
		{18, t720x576p50, ar16_9},
		{19, t1280x720p50, ar16_9},
		{20, t1920x1080i50, ar16_9},
		{21, t1440x576i50, ar4_3},
		{22, t1440x576i50, ar16_9},
		{23, t1440x288p50, ar4_3},
		{24, t1440x288p50, ar16_9},
		{25, t2880x576i50, ar4_3},
		{26, t2880x576i50, ar16_9},
		{27, t2880x288p50, ar4_3},
		{28, t2880x288p50, ar16_9},
		{29, t1440x576p50, ar4_3},
		{30, t1440x576p50, ar16_9},
		{31, t1920x1080p50, ar16_9},
		{32, t1920x1080p24, ar16_9},
		{33, t1920x1080p25, ar16_9},
		{34, t1920x1080p30, ar16_9},
		{35, t2880x480p60, ar4_3},
		{36, t2880x480p60, ar16_9},
		{37, t2880x576p50, ar4_3},
		{38, t2880x576p50, ar16_9},
		{39, t1920x1080i50r, ar16_9},
		{40, t1920x1080i100, ar16_9},
		{41, t1280x720p100, ar16_9},
		{42, t720x576p100, ar4_3},
		{43, t720x576p100, ar16_9},
		{44, t1440x576i100, ar4_3},
		{45, t1440x576i100, ar16_9},
		{46, t1920x1080i120, ar16_9},
		{47, t1280x720p120, ar16_9},
		{48, t720x480p120, ar4_3},
		{49, t720x480p120, ar16_9},
		{50, t1440x480i120, ar4_3},
		{51, t1440x480i120, ar16_9},
		{52, t720x576p200, ar4_3},
		{53, t720x576p200, ar16_9},
		{54, t1440x576i200, ar4_3},
		{55, t1440x576i200, ar16_9},
		{56, t720x480p240, ar4_3},
		{57, t720x480p240, ar16_9},
		{58, t1440x480i240, ar4_3},
		{59, t1440x480i240, ar16_9},
		{60, t1280x720p24, ar16_9},
		{61, t1280x720p25, ar16_9},
		{62, t1280x720p30, ar16_9},
		{63, t1920x1080p120, ar16_9},
		{64, t1920x1080p100, ar16_9},
		{65, t1280x720p24, ar64_27},
		{66, t1280x720p25, ar64_27},
		{67, t1280x720p30, ar64_27},
		{68, t1280x720p50, ar64_27},
		{69, t1280x720p60, ar64_27},
		{70, t1280x720p100, ar64_27},
		{71, t1280x720p120, ar64_27},
		{72, t1920x1080p24, ar64_27},
		{73, t1920x1080p25, ar64_27},
		{74, t1920x1080p30, ar64_27},
		{75, t1920x1080p50, ar64_27},
		{76, t1920x1080p60, ar64_27},
		{77, t1920x1080p100, ar64_27},
		{78, t1920x1080p120, ar64_27},
		{79, t1680x720p24, ar64_27},
		{80, t1680x720p25, ar64_27},
		{81, t1680x720p30, ar64_27},
		{82, t1680x720p50, ar64_27},
		{83, t1680x720p60, ar64_27},
		{84, t1680x720p100, ar64_27},
		{85, t1680x720p120, ar64_27},
		{86, t2560x1080p24, ar64_27},
		{87, t2560x1080p25, ar64_27},
		{88, t2560x1080p30, ar64_27},
		{89, t2560x1080p50, ar64_27},
		{90, t2560x1080p60, ar64_27},
		{91, t2560x1080p100, ar64_27},
		{92, t2560x1080p120, ar64_27},
		{93, t3840x2160p24, ar16_9},
		{94, t3840x2160p25, ar16_9},
		{95, t3840x2160p30, ar16_9},
		{96, t3840x2160p50, ar16_9},
		{97, t3840x2160p60, ar16_9},
		{98, t4096x2160p24, ar256_135},
		{99, t4096x2160p25, ar256_135},
		{100, t4096x2160p30, ar256_135},
		{101, t4096x2160p50, ar256_135},
		{102, t4096x2160p60, ar256_135},
		{103, t3840x2160p24, ar64_27},
		{104, t3840x2160p25, ar64_27},
		{105, t3840x2160p30, ar64_27},
		{106, t3840x2160p50, ar64_27},
		{107, t3840x2160p60, ar64_27},
		{108, t1280x720p48, ar16_9},
		{109, t1280x720p48, ar64_27},
		{110, t1680x720p48, ar64_27},
		{111, t1920x1080p48, ar16_9},
		{112, t1920x1080p48, ar64_27},
		{113, t2560x1080p48, ar64_27},
		{114, t3840x2160p48, ar16_9},
		{115, t4096x2160p48, ar256_135},
		{116, t3840x2160p48, ar64_27},
		{117, t3840x2160p100, ar16_9},
		{118, t3840x2160p120, ar16_9},
		{119, t3840x2160p100, ar64_27},
		{120, t3840x2160p120, ar64_27},
		{121, t5120x2160p24, ar64_27},
		{122, t5120x2160p25, ar64_27},
		{123, t5120x2160p30, ar64_27},
		{124, t5120x2160p48, ar64_27},
		{125, t5120x2160p50, ar64_27},
		{126, t5120x2160p60, ar64_27},
		{127, t5120x2160p100, ar64_27},
		// 128-192 are reserved.
		{193, t5120x2160p120, ar64_27},
		{194, t7680x4320p24, ar16_9},
		{195, t7680x4320p25, ar16_9},
		{196, t7680x4320p30, ar16_9},
		{197, t7680x4320p48, ar16_9},
		{198, t7680x4320p50, ar16_9},
		{199, t7680x4320p60, ar16_9},
		{200, t7680x4320p100, ar16_9},
		{201, t7680x4320p120, ar16_9},
		{202, t7680x4320p24, ar64_27},
		{203, t7680x4320p25, ar64_27},
		{204, t7680x4320p30, ar64_27},
		{205, t7680x4320p48, ar64_27},
		{206, t7680x4320p50, ar64_27},
		{207, t7680x4320p60, ar64_27},
		{208, t7680x4320p100, ar64_27},
		{209, t7680x4320p120, ar64_27},
		{210, t10240x4320p24, ar64_27},
		{211, t10240x4320p25, ar64_27},
		{212, t10240x4320p30, ar64_27},
		{213, t10240x4320p48, ar64_27},
		{214, t10240x4320p50, ar64_27},
		{215, t10240x4320p60, ar64_27},
		{216, t10240x4320p100, ar64_27},
		{217, t10240x4320p120, ar64_27},
		{218, t4096x2160p100, ar256_135},
		{219, t4096x2160p120, ar256_135},
	}

	formats := make(map[uint8]*VideoFormat, len(entries))
	for _, e := range entries {
		formats[e.vic] = &VideoFormat{
			VIC:                e.vic,
			HorizActive:        e.t.hActive,
			VertActive:         e.t.vActive,
			HorizFront:         e.t.hFront,
			VertFront:          e.t.vFront,
			HorizSync:          e.t.hSync,
			VertSync:           e.t.vSync,
			HorizBack:          e.t.hBack,
			VertBack:           e.t.vBack,
			HSyncPolarity:      polarityOf(e.t.hPositive),
			VSyncPolarity:      polarityOf(e.t.vPositive),
			PixelClockHz:       e.t.clockKHz * 1000,
			Interlaced:         e.t.interlaced,
			PictureAspectRatio: e.ar,
		}
	}
	return formats
}

func polarityOf(positive bool) VideoSyncPolarity {
	if positive {
		return VideoSyncPositive
	}
	return VideoSyncNegative
}
