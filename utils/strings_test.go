package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitUInt64(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		s   string
		ids []uint64
	}{
		{"", []uint64{}},
		{"1", []uint64{1}},
		{"1,2,3", []uint64{1, 2, 3}},
		{" 1, 2 ,5", []uint64{1, 2, 5}},
	}

	for _, test := range tests {
		ids, err := SplitUInt64(test.s, ",")
		if assert.NoError(err, test.s) {
			assert.Equal(test.ids, ids, test.s)
		}
	}

	invalidTests := []string{
		"1,x",
		"1,-4",
		"1,,2",
		",",
	}

	for _, s := range invalidTests {
		_, err := SplitUInt64(s, ",")
		assert.Error(err, s)
	}
}

func TestJoinUInt64(t *testing.T) {
	assert.Equal(t, "", JoinUInt64(nil, ","))
	assert.Equal(t, "4,2", JoinUInt64([]uint64{4, 2}, ","))
}
