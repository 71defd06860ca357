package utils

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

func Split(s string, sep string) []string {
	if len(s) == 0 {
		return []string{}
	}
	return strings.Split(s, sep)
}

// SplitUInt64 parses a separated id list. Any invalid entry fails the whole list.
func SplitUInt64(s string, sep string) ([]uint64, error) {
	n := make([]uint64, 0)
	for _, value := range Split(s, sep) {
		i, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid id %q", value)
		}
		n = append(n, i)
	}
	return n, nil
}

func JoinUInt64(ids []uint64, sep string) string {
	strs := make([]string, 0, len(ids))
	for _, id := range ids {
		strs = append(strs, strconv.FormatUint(id, 10))
	}
	return strings.Join(strs, sep)
}
