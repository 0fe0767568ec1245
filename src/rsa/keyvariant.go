package rsa

// KeyKind distinguishes the two variants a Key can hold.
type KeyKind int

const (
	KeyKindPrivate KeyKind = iota
	KeyKindPublic
)

// Key is a tagged union over PrivateKey and PublicKey, replacing the
// reference implementation's habit of probing an object for a "d" attribute
// to decide what it can do. Exactly one of Private/Public is set, per Kind.
type Key struct {
	Kind    KeyKind
	Private *PrivateKey
	Public  *PublicKey
}

// FromPrivate wraps a private key as a Key.
func FromPrivate(k *PrivateKey) Key {
	return Key{Kind: KeyKindPrivate, Private: k}
}

// FromPublic wraps a public key as a Key.
func FromPublic(k *PublicKey) Key {
	return Key{Kind: KeyKindPublic, Public: k}
}

// CanEncrypt is always true: both variants carry a public exponent and
// modulus.
func (k Key) CanEncrypt() bool {
	return true
}

// CanDecrypt is true only for the private variant.
func (k Key) CanDecrypt() bool {
	return k.Kind == KeyKindPrivate
}

// AsPublic returns the public view of k regardless of variant.
func (k Key) AsPublic() *PublicKey {
	if k.Kind == KeyKindPrivate {
		return k.Private.Public()
	}
	return k.Public
}
