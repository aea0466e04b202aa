package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	original := time.Date(2025, 6, 1, 12, 30, 45, 123000000, time.UTC)

	cursor := EncodeCursor(original)
	decoded, err := DecodeCursor(cursor)
	require.NoError(t, err)
	assert.True(t, original.Equal(decoded))
}

func TestDecodeCursorGarbage(t *testing.T) {
	_, err := DecodeCursor("not base64 at all!!")
	assert.Error(t, err)

	// valid base64 that does not hold a timestamp
	_, err = DecodeCursor("aGVsbG8=")
	assert.Error(t, err)
}

func TestPageVerify(t *testing.T) {
	cases := []struct {
		in   int64
		want int64
	}{
		{0, 10},
		{-5, 10},
		{7, 7},
		{30, 30},
		{31, 30},
		{1000, 30},
	}

	for _, tc := range cases {
		num := tc.in
		PageVerify(&num)
		assert.Equal(t, tc.want, num)
	}
}
