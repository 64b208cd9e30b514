package ffprobe

import "testing"

func TestFrameRateParsesRationalRates(t *testing.T) {
	cases := []struct {
		name   string
		stream Stream
		want   int
	}{
		{"ntsc film", Stream{CodecType: "video", AvgFrameRate: "24000/1001"}, 24},
		{"pal", Stream{CodecType: "video", AvgFrameRate: "25/1"}, 25},
		{"plain number", Stream{CodecType: "video", AvgFrameRate: "30"}, 30},
		{"falls back to r_frame_rate", Stream{CodecType: "video", AvgFrameRate: "0/0", RFrameRate: "24/1"}, 24},
		{"no rate", Stream{CodecType: "video"}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Result{Streams: []Stream{tc.stream}}
			if got := result.FrameRate(); got != tc.want {
				t.Fatalf("FrameRate() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestFrameRateSkipsNonVideoStreams(t *testing.T) {
	result := Result{Streams: []Stream{
		{CodecType: "audio", AvgFrameRate: "90000/1"},
		{CodecType: "video", AvgFrameRate: "24/1"},
	}}
	if got := result.FrameRate(); got != 24 {
		t.Fatalf("expected the video stream rate, got %d", got)
	}
}

func TestDurationSeconds(t *testing.T) {
	result := Result{Format: Format{Duration: "123.45"}}
	if got := result.DurationSeconds(); got != 123.45 {
		t.Fatalf("unexpected duration %v", got)
	}

	invalid := Result{Format: Format{Duration: "bad"}}
	if got := invalid.DurationSeconds(); got != 0 {
		t.Fatalf("expected 0 for invalid duration, got %v", got)
	}
}

func TestVideoStreamCount(t *testing.T) {
	result := Result{Streams: []Stream{
		{CodecType: "video"},
		{CodecType: "audio"},
		{CodecType: "VIDEO"},
	}}
	if got := result.VideoStreamCount(); got != 2 {
		t.Fatalf("expected 2 video streams, got %d", got)
	}
}
