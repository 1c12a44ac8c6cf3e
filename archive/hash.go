package archive

import (
	"io"

	"github.com/minio/highwayhash"
)

// fingerprintKey is the ASCII archive domain name, zero padded to the 32 byte highwayhash key size.
// Changing it invalidates every recorded fingerprint.
var fingerprintKey = [32]byte{
	'r', 'e', 'a', 'c', 'h', 'a', 'b', 'i', 'l', 'i', 't', 'y', '.', 'a', 'r', 'c',
	'h', 'i', 'v', 'e', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Fingerprint returns keyed highwayhash-64 of archive content streamed from reader
func Fingerprint(reader io.Reader) (uint64, error) {
	hash, err := highwayhash.New64(fingerprintKey[:])
	if err != nil {
		return 0, err
	}
	if _, err = io.Copy(hash, reader); err != nil {
		return 0, err
	}
	return hash.Sum64(), nil
}
