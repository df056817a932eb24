package util

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "seconds", input: `"30s"`, want: 30 * time.Second},
		{name: "minutes", input: `"5m"`, want: 5 * time.Minute},
		{name: "compound", input: `"1h30m"`, want: 90 * time.Minute},
		{name: "number is nanoseconds", input: `1000000000`, want: time.Second},
		{name: "zero", input: `"0s"`, want: 0},
		{name: "garbage string", input: `"soon"`, wantErr: true},
		{name: "wrong type", input: `true`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDurationRoundTrip(t *testing.T) {
	type conf struct {
		Timeout Duration `json:"timeout"`
	}

	out, err := json.Marshal(conf{Timeout: Duration(90 * time.Second)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"timeout":"1m30s"}`, string(out))

	var in conf
	require.NoError(t, json.Unmarshal(out, &in))
	assert.Equal(t, Duration(90*time.Second), in.Timeout)
}
