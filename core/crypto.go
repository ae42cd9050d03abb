package core

import (
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"gitlab.com/yawning/secp256k1-voi/secec"
	"golang.org/x/crypto/sha3"
)

const (
	didKeyPrefix = "did:key:z"
	didPKHPrefix = "did:pkh:eip155:"
)

// multicodec varint for secp256k1-pub, prepended to the compressed key
// before multibase encoding.
var didKeyMulticodec = []byte{0xe7, 0x01}

func GetHash(bytes []byte) []byte {
	hash := sha3.NewLegacyKeccak256()
	hash.Write(bytes)
	return hash.Sum(nil)
}

// SignBytes signs keccak256(bytes) with a hex-encoded secp256k1 private
// key and returns a 65-byte recoverable signature.
func SignBytes(bytes []byte, privatekey string) ([]byte, error) {
	hashed := GetHash(bytes)

	key, err := crypto.HexToECDSA(privatekey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to convert private key")
	}

	signature, err := crypto.Sign(hashed, key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign message")
	}

	return signature, nil
}

// RecoverSigner recovers the compressed public key of whoever produced
// the signature over keccak256(message).
func RecoverSigner(message []byte, signature []byte) ([]byte, error) {
	hashed := GetHash(message)

	recovered, err := crypto.Ecrecover(hashed, signature)
	if err != nil {
		return nil, errors.Wrap(err, "failed to recover public key")
	}

	pubkey, err := secec.NewPublicKey(recovered)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse recovered public key")
	}

	return pubkey.CompressedBytes(), nil
}

// VerifySignature checks that the signature over message was produced by
// the holder of the given DID. did:key and did:pkh:eip155 forms are
// supported.
func VerifySignature(message []byte, signature []byte, did string) error {
	switch {
	case strings.HasPrefix(did, didKeyPrefix):
		compressed, err := RecoverSigner(message, signature)
		if err != nil {
			return err
		}
		if DIDKeyFromPubkey(compressed) != did {
			return errors.New("signature does not match the did:key identifier")
		}
		return nil
	case strings.HasPrefix(did, didPKHPrefix):
		hashed := GetHash(message)
		recovered, err := crypto.Ecrecover(hashed, signature)
		if err != nil {
			return errors.Wrap(err, "failed to recover public key")
		}
		pubkey, err := crypto.UnmarshalPubkey(recovered)
		if err != nil {
			return errors.Wrap(err, "failed to parse recovered public key")
		}
		address := crypto.PubkeyToAddress(*pubkey).Hex()
		split := strings.Split(did, ":")
		if !strings.EqualFold(split[len(split)-1], address) {
			return errors.New("signature does not match the did:pkh address")
		}
		return nil
	default:
		return errors.Errorf("unsupported did method: %s", did)
	}
}

// DIDKeyFromPubkey renders a compressed secp256k1 public key as a
// did:key identifier (multicodec prefix + base58btc multibase).
func DIDKeyFromPubkey(compressed []byte) string {
	payload := append(append([]byte{}, didKeyMulticodec...), compressed...)
	return didKeyPrefix + base58.Encode(payload)
}

// DIDKeyFromPrivateKey derives the did:key identifier for a hex-encoded
// private key. Used to compute the service's own issuing identity.
func DIDKeyFromPrivateKey(privatekey string) (string, error) {
	key, err := crypto.HexToECDSA(privatekey)
	if err != nil {
		return "", errors.Wrap(err, "failed to convert private key")
	}

	pubkey, err := secec.NewPublicKey(crypto.FromECDSAPub(&key.PublicKey))
	if err != nil {
		return "", errors.Wrap(err, "failed to parse public key")
	}

	return DIDKeyFromPubkey(pubkey.CompressedBytes()), nil
}

// DIDPKHFromPrivateKey derives the did:pkh:eip155:1 identifier for a
// hex-encoded private key.
func DIDPKHFromPrivateKey(privatekey string) (string, error) {
	key, err := crypto.HexToECDSA(privatekey)
	if err != nil {
		return "", errors.Wrap(err, "failed to convert private key")
	}
	address := crypto.PubkeyToAddress(key.PublicKey).Hex()
	return didPKHPrefix + "1:" + address, nil
}
