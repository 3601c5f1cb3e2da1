package main

import (
	"testing"

	"trail-tools/trtools/format"

	"github.com/stretchr/testify/require"
)

func TestParseLocation(t *testing.T) {
	tests := map[string]struct {
		value   string
		lat     float64
		lng     float64
		isNil   bool
		wantErr bool
	}{
		"empty":        {value: "", isNil: true},
		"valid":        {value: "47.6,-121.9", lat: 47.6, lng: -121.9},
		"spaces":       {value: " 47.6 , -121.9 ", lat: 47.6, lng: -121.9},
		"one value":    {value: "47.6", wantErr: true},
		"three values": {value: "47.6,-121.9,100", wantErr: true},
		"not a number": {value: "north,-121.9", wantErr: true},
		"bad lng":      {value: "47.6,west", wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			p, err := parseLocation(tc.value)
			if tc.wantErr {
				require.Error(err)
				return
			}
			require.NoError(err)
			if tc.isNil {
				require.Nil(p)
				return
			}
			require.Equal(tc.lat, p.Latitude)
			require.Equal(tc.lng, p.Longitude)
			require.True(p.Elevation.Null())
		})
	}
}

func TestCheckOutput(t *testing.T) {
	require := require.New(t)

	require.Error(checkOutput(""))
	require.ErrorIs(checkOutput("out.json"), format.ErrUnsupportedFormat)
	require.NoError(checkOutput("out.gpx"))
	require.NoError(checkOutput("out.KML"))
}
