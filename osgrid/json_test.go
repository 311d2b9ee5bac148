package osgrid_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/gridref/osgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOSGB_MarshalJSON verifies a British reference serializes as its
// canonical string, never as a decomposed structure.
func TestOSGB_MarshalJSON(t *testing.T) {
	for _, v := range osgbVectors() {
		gridref, err := osgrid.NewOSGB(v.eastings, v.northings, v.precision)
		require.NoError(t, err)

		data, err := json.Marshal(gridref)
		require.NoError(t, err)
		assert.Equal(t, `"`+v.output+`"`, string(data), "JSON form of %q", v.output)
	}
}

// TestOSGB_UnmarshalJSON verifies a JSON string decodes through the
// parser, accepting the same permissive spellings.
func TestOSGB_UnmarshalJSON(t *testing.T) {
	for _, v := range osgbVectors() {
		data, err := json.Marshal(v.input)
		require.NoError(t, err)

		var gridref osgrid.OSGB
		require.NoError(t, json.Unmarshal(data, &gridref), "JSON %q should decode", v.input)

		want, err := osgrid.NewOSGB(v.eastings, v.northings, v.precision)
		require.NoError(t, err)
		assert.Equal(t, want, gridref, "decoded value of %q", v.input)
	}
}

// TestOSI_MarshalJSON verifies an Irish reference serializes as its
// canonical string.
func TestOSI_MarshalJSON(t *testing.T) {
	for _, v := range osiVectors() {
		gridref, err := osgrid.NewOSI(v.eastings, v.northings, v.precision)
		require.NoError(t, err)

		data, err := json.Marshal(gridref)
		require.NoError(t, err)
		assert.Equal(t, `"`+v.output+`"`, string(data), "JSON form of %q", v.output)
	}
}

// TestOSI_UnmarshalJSON verifies a JSON string decodes through the
// parser.
func TestOSI_UnmarshalJSON(t *testing.T) {
	for _, v := range osiVectors() {
		data, err := json.Marshal(v.input)
		require.NoError(t, err)

		var gridref osgrid.OSI
		require.NoError(t, json.Unmarshal(data, &gridref), "JSON %q should decode", v.input)

		want, err := osgrid.NewOSI(v.eastings, v.northings, v.precision)
		require.NoError(t, err)
		assert.Equal(t, want, gridref, "decoded value of %q", v.input)
	}
}

// TestUnmarshalJSON_RejectsBadInput verifies malformed references and
// non-string JSON fail to decode.
func TestUnmarshalJSON_RejectsBadInput(t *testing.T) {
	var gridref osgrid.OSGB
	err := json.Unmarshal([]byte(`"TL123"`), &gridref)
	assert.ErrorIs(t, err, osgrid.ErrInvalidLength)

	err = json.Unmarshal([]byte(`{"eastings":1}`), &gridref)
	assert.Error(t, err)
}
