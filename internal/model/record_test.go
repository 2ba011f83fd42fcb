package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapAlgo_Text(t *testing.T) {
	t.Parallel()

	for _, a := range []WrapAlgo{WrapAlgoKMS, WrapAlgoSealedBox} {
		text, err := a.MarshalText()
		require.NoError(t, err)

		var back WrapAlgo
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, a, back)
	}

	_, err := WrapAlgo(9).MarshalText()
	assert.ErrorIs(t, err, ErrInvalidArgument)

	var a WrapAlgo
	assert.ErrorIs(t, a.UnmarshalText([]byte("rsa")), ErrInvalidArgument)
}

func TestWrapAlgo_RequiresKMSRef(t *testing.T) {
	t.Parallel()

	need, err := WrapAlgoKMS.RequiresKMSRef()
	require.NoError(t, err)
	assert.True(t, need)

	need, err = WrapAlgoSealedBox.RequiresKMSRef()
	require.NoError(t, err)
	assert.False(t, need)

	_, err = WrapAlgo(0).RequiresKMSRef()
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEncAlgo_Text(t *testing.T) {
	t.Parallel()

	assert.NoError(t, EncAlgoAES256GCM.Validate())
	assert.ErrorIs(t, EncAlgo(0).Validate(), ErrInvalidArgument)

	var a EncAlgo
	require.NoError(t, a.UnmarshalText([]byte("aes256gcm")))
	assert.Equal(t, EncAlgoAES256GCM, a)
	assert.Equal(t, "xchacha20", EncAlgoXChaCha20.String())
	assert.ErrorIs(t, a.UnmarshalText([]byte("des")), ErrInvalidArgument)
}

func TestParseDigest(t *testing.T) {
	t.Parallel()

	d := Digest{0xde, 0xad}
	parsed, err := ParseDigest(d.String())
	require.NoError(t, err)
	assert.Equal(t, d, parsed)

	_, err = ParseDigest("dead")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
