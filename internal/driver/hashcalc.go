package driver

import "crypto/sha256"

// Digest identifies a cached formatting result.
type Digest [32]byte

// combineDigest: H(content || fingerprint). Одинаковый ключ значит
// одинаковый вывод.
func combineDigest(content []byte, fingerprint [32]byte) Digest {
	h := sha256.New()
	_, _ = h.Write(fingerprint[:])
	_, _ = h.Write(content)
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
