package xaddr

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestWireSpecJSON(t *testing.T) {
	tests := []struct {
		spec Spec
		want string
	}{
		{HostPort{Host: "127.0.0.1", Port: 9000}, `{"network":"tcp","host":"127.0.0.1","port":9000}`},
		{HostPort{Host: "::1", Port: 0}, `{"network":"tcp","host":"::1"}`},
		{UnixPath{Path: "/tmp/app.sock"}, `{"network":"unix","path":"/tmp/app.sock"}`},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			data, err := json.Marshal(WireSpecFrom(tt.spec))
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))

			var w WireSpec
			require.NoError(t, json.Unmarshal(data, &w))
			got, err := w.ToSpec()
			require.NoError(t, err)
			assert.Equal(t, tt.spec, got)
		})
	}
}

func TestWireSpecYAML(t *testing.T) {
	data := []byte("network: tcp\nhost: 10.0.0.1\nport: 53\n")

	var w WireSpec
	require.NoError(t, yaml.Unmarshal(data, &w))
	spec, err := w.ToSpec()
	require.NoError(t, err)
	assert.Equal(t, HostPort{Host: "10.0.0.1", Port: 53}, spec)

	out, err := yaml.Marshal(WireSpecFrom(UnixPath{Path: "/run/app.sock"}))
	require.NoError(t, err)
	assert.Equal(t, "network: unix\npath: /run/app.sock\n", string(out))
}

func TestWireSpecFromNil(t *testing.T) {
	assert.Equal(t, WireSpec{}, WireSpecFrom(nil))
}

func TestWireSpecToSpecInvalid(t *testing.T) {
	tests := []struct {
		name string
		w    WireSpec
	}{
		{"empty", WireSpec{}},
		{"unknown network", WireSpec{Network: "udp", Host: "127.0.0.1"}},
		{"tcp hostname", WireSpec{Network: "tcp", Host: "localhost", Port: 80}},
		{"tcp empty host", WireSpec{Network: "tcp", Port: 80}},
		{"tcp with path", WireSpec{Network: "tcp", Host: "127.0.0.1", Path: "/tmp/x"}},
		{"unix empty path", WireSpec{Network: "unix"}},
		{"unix with host", WireSpec{Network: "unix", Host: "127.0.0.1", Path: "/tmp/x"}},
		{"unix with port", WireSpec{Network: "unix", Port: 80, Path: "/tmp/x"}},
		{"unix without separator", WireSpec{Network: "unix", Path: "app.sock"}},
		{"unix path parses as port", WireSpec{Network: "unix", Path: "80"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.w.ToSpec()
			assert.ErrorIs(t, err, ErrInvalidWire)
		})
	}
}
