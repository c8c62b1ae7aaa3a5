// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package prefixtree

import (
	_ "crypto/sha256" // digest.Canonical
	"encoding/binary"

	"github.com/opencontainers/go-digest"
)

// Digest returns the content identity of the key set and the nested
// key policy, the inputs that determine every lookup result.
// Values and dispatch mode are not part of the digest.
//
// Each key is written length prefixed, so no two key sets share
// their encoding.
func (m *matcher) Digest() digest.Digest {
	digester := digest.Canonical.Digester()
	h := digester.Hash()

	var buf [binary.MaxVarintLen64]byte

	// hash.Hash never returns an error on Write
	_, _ = h.Write([]byte{byte(m.policy)})

	for _, key := range m.keys {
		n := binary.PutUvarint(buf[:], uint64(len(key)))
		_, _ = h.Write(buf[:n])
		_, _ = h.Write([]byte(key))
	}

	return digester.Digest()
}
