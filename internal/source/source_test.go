package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDescriptor(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want Descriptor
	}{
		{
			name: "device zero",
			arg:  "0",
			want: Descriptor{Kind: KindDevice, Device: 0},
		},
		{
			name: "device nine",
			arg:  "9",
			want: Descriptor{Kind: KindDevice, Device: 9},
		},
		{
			name: "two digits is a path",
			arg:  "10",
			want: Descriptor{Kind: KindFile, Path: "10"},
		},
		{
			name: "file path",
			arg:  "clips/traffic.mp4",
			want: Descriptor{Kind: KindFile, Path: "clips/traffic.mp4"},
		},
		{
			name: "single letter is a path",
			arg:  "a",
			want: Descriptor{Kind: KindFile, Path: "a"},
		},
		{
			name: "rtsp url",
			arg:  "rtsp://cam.local/stream",
			want: Descriptor{Kind: KindFile, Path: "rtsp://cam.local/stream"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDescriptor(tt.arg))
		})
	}
}

func TestDescriptorString(t *testing.T) {
	assert.Equal(t, "device:2", ParseDescriptor("2").String())
	assert.Equal(t, "traffic.mp4", ParseDescriptor("traffic.mp4").String())
}

func TestEffectiveFPS(t *testing.T) {
	assert.Equal(t, 29.97, effectiveFPS(29.97, 30))
	assert.Equal(t, 30.0, effectiveFPS(0, 30))
	assert.Equal(t, 30.0, effectiveFPS(-1, 30))
	assert.Equal(t, 25.0, effectiveFPS(0, 25))
}
