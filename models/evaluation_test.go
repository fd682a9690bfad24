package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScoreMapEncodeDecodeRoundTrip(t *testing.T) {
	original := ScoreMap{1: 10, 2: 5, 3: 7.5, 4: 0}

	encoded, err := original.Encode()
	require.NoError(t, err)

	decoded, err := DecodeScoreMap(encoded)
	require.NoError(t, err)
	require.Equal(t, original, decoded)
}

func TestScoreMapEncodeNilAsEmptyObject(t *testing.T) {
	var m ScoreMap

	encoded, err := m.Encode()
	require.NoError(t, err)
	require.Equal(t, "{}", encoded)
}

func TestScoreMapDecodeEmptyInput(t *testing.T) {
	for _, raw := range []string{"", "null", "{}"} {
		decoded, err := DecodeScoreMap(raw)
		require.NoError(t, err, "input %q", raw)
		require.NotNil(t, decoded)
		require.Empty(t, decoded)
	}
}

func TestScoreMapDecodeRejectsMalformedJSON(t *testing.T) {
	_, err := DecodeScoreMap("{1: oops")
	require.Error(t, err)
}

func TestScoreMapTotal(t *testing.T) {
	require.Zero(t, ScoreMap{}.Total())
	require.Zero(t, ScoreMap(nil).Total())
	require.Equal(t, 30.0, ScoreMap{1: 10, 2: 5, 3: 10, 4: 5}.Total())
	require.Equal(t, 8.25, ScoreMap{1: 4.5, 2: 3.75}.Total())
}

func TestScoreMapCloneIsIndependent(t *testing.T) {
	original := ScoreMap{1: 10, 2: 5}
	clone := original.Clone()

	clone[1] = 3
	clone[9] = 1

	require.Equal(t, 10.0, original[1])
	require.NotContains(t, original, ParameterID(9))
}

func TestScoreMapScan(t *testing.T) {
	var fromBytes ScoreMap
	require.NoError(t, fromBytes.Scan([]byte(`{"1":10,"2":5}`)))
	require.Equal(t, ScoreMap{1: 10, 2: 5}, fromBytes)

	var fromString ScoreMap
	require.NoError(t, fromString.Scan(`{"3":7.5}`))
	require.Equal(t, ScoreMap{3: 7.5}, fromString)

	var fromNil ScoreMap
	require.NoError(t, fromNil.Scan(nil))
	require.NotNil(t, fromNil)
	require.Empty(t, fromNil)

	var fromInt ScoreMap
	require.Error(t, fromInt.Scan(42))
}

func TestScoreMapValue(t *testing.T) {
	v, err := ScoreMap{1: 10}.Value()
	require.NoError(t, err)
	require.Equal(t, `{"1":10}`, v)
}
