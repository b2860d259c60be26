package generator

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"strconv"
)

// DeriveSeed turns (phrase, service, version) into the 32-bit engine seed.
//
// The seed is HMAC-SHA256 keyed with the UTF-8 phrase over the message
// "<service>:<version>". The first four bytes of the MAC are read big-endian
// as a two's-complement int32 and the absolute value is returned, so the
// result lies in [0, 2^31].
func DeriveSeed(phrase, service string, version int) uint32 {
	mac := hmac.New(sha256.New, []byte(phrase))
	mac.Write([]byte(service + ":" + strconv.Itoa(version)))
	sum := mac.Sum(nil)

	v := int64(int32(binary.BigEndian.Uint32(sum[:4])))
	if v < 0 {
		v = -v
	}
	return uint32(v)
}
