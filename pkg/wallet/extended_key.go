package wallet

import (
	"crypto/hmac"
	"crypto/sha512"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// ExtendedPrivateKeySize is the byte length of the two halves of an
	// extended private key
	ExtendedPrivateKeySize = 64
	// PublicKeySize is the byte length of a serialized public key
	PublicKeySize = 32
	// ChainCodeSize is the byte length of a chain code
	ChainCodeSize = 32
	// KeyHashSize is the byte length of a public key hash
	KeyHashSize = 28

	masterKeyIterations = 4096
	masterKeyLength     = ExtendedPrivateKeySize + ChainCodeSize
)

// ExtendedKey is a node of a hierarchical deterministic key tree. A private
// node holds the two halves of the extended private key along with the chain
// code, while a neutered node only holds the public key and the chain code.
// Hardened children can be derived only from private nodes, while neutered
// ones still support the derivation of non-hardened children.
type ExtendedKey struct {
	privKey   []byte
	pubKey    []byte
	chainCode []byte
}

// MasterKeyFromEntropy generates the master key of a hierarchical
// deterministic key tree from the provided entropy. The key is stretched
// with PBKDF2-HMAC-SHA512 and the first half of the extended private key is
// clamped so that every derived scalar stays in the proper subgroup
func MasterKeyFromEntropy(entropy []byte) (*ExtendedKey, error) {
	if len(entropy) <= 0 {
		return nil, ErrNullEntropy
	}

	xprv := pbkdf2.Key(
		[]byte{}, entropy, masterKeyIterations, masterKeyLength, sha512.New,
	)
	xprv[0] &= 0xf8
	xprv[31] &= 0x1f
	xprv[31] |= 0x40

	pubKey, err := publicKeyForScalar(xprv[:32])
	if err != nil {
		return nil, err
	}

	return &ExtendedKey{
		privKey:   xprv[:ExtendedPrivateKeySize],
		pubKey:    pubKey,
		chainCode: xprv[ExtendedPrivateKeySize:],
	}, nil
}

// IsPrivate returns whether the node holds the extended private key
func (k *ExtendedKey) IsPrivate() bool {
	return len(k.privKey) > 0
}

// PublicKey returns the serialized public key of the node
func (k *ExtendedKey) PublicKey() []byte {
	pubKey := make([]byte, PublicKeySize)
	copy(pubKey, k.pubKey)
	return pubKey
}

// PublicKeyHash returns the hash of the node's public key, the unit of
// account of payment and staking credentials
func (k *ExtendedKey) PublicKeyHash() []byte {
	return hashPublicKey(k.pubKey)
}

// ChainCode returns the chain code of the node
func (k *ExtendedKey) ChainCode() []byte {
	chainCode := make([]byte, ChainCodeSize)
	copy(chainCode, k.chainCode)
	return chainCode
}

// Serialize returns the binary representation of the node, either the
// extended private key or the public key, followed by the chain code
func (k *ExtendedKey) Serialize() []byte {
	if k.IsPrivate() {
		buf := make([]byte, 0, ExtendedPrivateKeySize+ChainCodeSize)
		buf = append(buf, k.privKey...)
		return append(buf, k.chainCode...)
	}
	buf := make([]byte, 0, PublicKeySize+ChainCodeSize)
	buf = append(buf, k.pubKey...)
	return append(buf, k.chainCode...)
}

// Neuter returns the public-only copy of the node. The copy supports the
// derivation of non-hardened children
func (k *ExtendedKey) Neuter() *ExtendedKey {
	return &ExtendedKey{
		pubKey:    k.PublicKey(),
		chainCode: k.ChainCode(),
	}
}

// Child derives the child node at the provided index. Indexes in
// [HardenedKeyStart, 2^32) yield hardened children and require the node to
// be private
func (k *ExtendedKey) Child(index uint32) (*ExtendedKey, error) {
	hardened := index >= HardenedKeyStart
	if hardened && !k.IsPrivate() {
		return nil, ErrDerivationRequiresPrivateKey
	}

	indexBytes := []byte{
		byte(index), byte(index >> 8), byte(index >> 16), byte(index >> 24),
	}

	zmac := hmac.New(sha512.New, k.chainCode)
	ccmac := hmac.New(sha512.New, k.chainCode)
	if hardened {
		zmac.Write([]byte{0x00})
		zmac.Write(k.privKey)
		zmac.Write(indexBytes)
		ccmac.Write([]byte{0x01})
		ccmac.Write(k.privKey)
		ccmac.Write(indexBytes)
	} else {
		zmac.Write([]byte{0x02})
		zmac.Write(k.pubKey)
		zmac.Write(indexBytes)
		ccmac.Write([]byte{0x03})
		ccmac.Write(k.pubKey)
		ccmac.Write(indexBytes)
	}

	z := zmac.Sum(nil)
	zL, zR := z[:28], z[32:]
	chainCode := ccmac.Sum(nil)[32:]

	if !k.IsPrivate() {
		pubKey, err := addPublicKeyDelta(k.pubKey, zL)
		if err != nil {
			return nil, err
		}
		return &ExtendedKey{
			pubKey:    pubKey,
			chainCode: chainCode,
		}, nil
	}

	privKey := make([]byte, ExtendedPrivateKeySize)
	copy(privKey, add28Mul8(k.privKey[:32], zL))
	copy(privKey[32:], add256Bits(k.privKey[32:], zR))

	pubKey, err := publicKeyForScalar(privKey[:32])
	if err != nil {
		return nil, err
	}

	return &ExtendedKey{
		privKey:   privKey,
		pubKey:    pubKey,
		chainCode: chainCode,
	}, nil
}

// Derive derives the descendant node at the provided path, one child per
// path element in order
func (k *ExtendedKey) Derive(path DerivationPath) (*ExtendedKey, error) {
	node := k
	for _, step := range path {
		childNode, err := node.Child(step)
		if err != nil {
			return nil, err
		}
		node = childNode
	}
	return node, nil
}

// Sign produces the signature of the provided message with the node's
// extended private key. The signature is verifiable with the node's public
// key by any standard ed25519 verifier
func (k *ExtendedKey) Sign(message []byte) ([]byte, error) {
	if !k.IsPrivate() {
		return nil, ErrSigningRequiresPrivateKey
	}

	h := sha512.New()
	h.Write(k.privKey[32:])
	h.Write(message)
	nonce, err := edwards25519.NewScalar().SetUniformBytes(h.Sum(nil))
	if err != nil {
		return nil, err
	}

	noncePoint := new(edwards25519.Point).ScalarBaseMult(nonce)

	h.Reset()
	h.Write(noncePoint.Bytes())
	h.Write(k.pubKey)
	h.Write(message)
	challenge, err := edwards25519.NewScalar().SetUniformBytes(h.Sum(nil))
	if err != nil {
		return nil, err
	}

	scalar, err := scalarForKey(k.privKey[:32])
	if err != nil {
		return nil, err
	}

	s := edwards25519.NewScalar().MultiplyAdd(challenge, scalar, nonce)

	sig := make([]byte, 64)
	copy(sig, noncePoint.Bytes())
	copy(sig[32:], s.Bytes())
	return sig, nil
}

// add28Mul8 returns x + 8*y where x is a 32 byte and y a 28 byte
// little-endian integer
func add28Mul8(x, y []byte) []byte {
	out := make([]byte, 32)
	carry := uint16(0)

	for i := 0; i < 28; i++ {
		r := uint16(x[i]) + uint16(y[i])<<3 + carry
		out[i] = byte(r)
		carry = r >> 8
	}
	for i := 28; i < 32; i++ {
		r := uint16(x[i]) + carry
		out[i] = byte(r)
		carry = r >> 8
	}

	return out
}

// add256Bits returns x + y mod 2^256 where both operands are 32 byte
// little-endian integers
func add256Bits(x, y []byte) []byte {
	out := make([]byte, 32)
	carry := uint16(0)

	for i := 0; i < 32; i++ {
		r := uint16(x[i]) + uint16(y[i]) + carry
		out[i] = byte(r)
		carry = r >> 8
	}

	return out
}

// scalarForKey reduces a 32 byte little-endian integer to a scalar of the
// edwards25519 group
func scalarForKey(key []byte) (*edwards25519.Scalar, error) {
	wide := make([]byte, 64)
	copy(wide, key)
	return edwards25519.NewScalar().SetUniformBytes(wide)
}

func publicKeyForScalar(key []byte) ([]byte, error) {
	scalar, err := scalarForKey(key)
	if err != nil {
		return nil, err
	}
	return new(edwards25519.Point).ScalarBaseMult(scalar).Bytes(), nil
}

// addPublicKeyDelta returns the public key shifted by the point 8*delta of
// the base point, the public counterpart of add28Mul8 on the private half
func addPublicKeyDelta(pubKey, delta []byte) ([]byte, error) {
	point, err := new(edwards25519.Point).SetBytes(pubKey)
	if err != nil {
		return nil, ErrInvalidPublicKey
	}

	scalar, err := scalarForKey(add28Mul8(make([]byte, 32), delta))
	if err != nil {
		return nil, err
	}

	deltaPoint := new(edwards25519.Point).ScalarBaseMult(scalar)
	return new(edwards25519.Point).Add(point, deltaPoint).Bytes(), nil
}

func hashPublicKey(pubKey []byte) []byte {
	h, _ := blake2b.New(KeyHashSize, nil)
	h.Write(pubKey)
	return h.Sum(nil)
}
