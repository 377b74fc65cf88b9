package xaddr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicyCheck(t *testing.T) {
	p, err := NewPolicy(PolicyConfig{
		Allow: []string{
			"10.0.0.0/8",
			"192.168.1.1-192.168.1.10",
			"::1",
			" 172.16.0.1 ",
		},
	})
	require.NoError(t, err)

	tests := []struct {
		input   string
		allowed bool
	}{
		{"10.1.2.3:80", true},
		{"10.255.255.255", true},
		{"192.168.1.5:443", true},
		{"192.168.1.11:443", false},
		{"172.16.0.1", true},
		{"[::1]:9000", true},
		{"[::ffff:10.0.0.1]:53", true},
		{"8.8.8.8:53", false},
		{"80", false}, // 默认主机 0.0.0.0 不在列表中
		{"/tmp/app.sock", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			spec := MustParseAddress(tt.input)
			err := p.Check(spec)
			if tt.allowed {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrNotAllowed)
		})
	}
}

func TestPolicyAllowAll(t *testing.T) {
	p, err := NewPolicy(PolicyConfig{})
	require.NoError(t, err)

	assert.NoError(t, p.Check(HostPort{Host: "8.8.8.8", Port: 53}))
	assert.NoError(t, p.Check(HostPort{Host: "::", Port: 80}))
	assert.ErrorIs(t, p.Check(UnixPath{Path: "/tmp/app.sock"}), ErrNotAllowed)
	assert.ErrorIs(t, p.Check(nil), ErrNotAllowed)
}

func TestPolicyAllowUnix(t *testing.T) {
	p, err := NewPolicy(PolicyConfig{Allow: []string{"127.0.0.0/8"}, AllowUnix: true})
	require.NoError(t, err)

	assert.NoError(t, p.Check(UnixPath{Path: "/tmp/app.sock"}))
	assert.NoError(t, p.Check(HostPort{Host: "127.0.0.1"}))
	assert.ErrorIs(t, p.Check(HostPort{Host: "localhost"}), ErrNotAllowed)
}

func TestNewPolicyInvalidRange(t *testing.T) {
	tests := []string{
		"bogus",
		"10.0.0.10-10.0.0.1",
		"10.0.0.1-bogus",
		"bogus-10.0.0.1",
		"10.0.0.0/99",
		"fe80::1%eth0",
		"10.0.0.1-::1",
	}

	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			_, err := NewPolicy(PolicyConfig{Allow: []string{s}})
			assert.ErrorIs(t, err, ErrInvalidRange)
		})
	}
}
