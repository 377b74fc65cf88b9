package xaddr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		host        string
		wantVersion Version
		wantLabel   string
	}{
		{"127.0.0.1", V4, "loopback"},
		{"0.0.0.0", V4, "unspecified"},
		{"10.0.0.1", V4, "private"},
		{"192.168.1.1", V4, "private"},
		{"169.254.1.1", V4, "link-local"},
		{"239.1.1.1", V4, "multicast"},
		{"8.8.8.8", V4, "global"},
		{"::1", V6, "loopback"},
		{"::", V6, "unspecified"},
		{"fe80::1", V6, "link-local"},
		{"fd00::1", V6, "private"},
		{"ff05::1", V6, "multicast"},
		{"2001:4860::8888", V6, "global"},
		{"::ffff:8.8.8.8", V4, "global"},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			c := HostPort{Host: tt.host, Port: 80}.Classify()
			assert.Equal(t, tt.wantVersion, c.Version)
			assert.Equal(t, tt.wantLabel, c.String())
		})
	}
}

func TestClassifyFlagsOverlap(t *testing.T) {
	c := HostPort{Host: "10.0.0.1"}.Classify()
	assert.True(t, c.IsPrivate)
	assert.True(t, c.IsGlobalUnicast)
	assert.False(t, c.IsLoopback)
}

func TestClassifyInvalid(t *testing.T) {
	c := HostPort{Host: "localhost"}.Classify()
	assert.Equal(t, Classification{}, c)
	assert.Equal(t, "unknown", c.String())
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "IPv4", V4.String())
	assert.Equal(t, "IPv6", V6.String())
	assert.Equal(t, "unknown", V0.String())
	assert.Equal(t, "unknown", Version(5).String())
}
