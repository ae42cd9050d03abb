package jwt

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/webgrove/gatecrest/core"
)

// Create creates a server signed token
func Create(claims Claims, privatekey string) (string, error) {
	header := Header{
		Type:      "JWT",
		Algorithm: "GCREST",
	}
	headerStr, err := json.Marshal(header)
	if err != nil {
		return "", err
	}

	payloadStr, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}

	headerB64 := base64.RawURLEncoding.EncodeToString(headerStr)
	payloadB64 := base64.RawURLEncoding.EncodeToString(payloadStr)
	target := headerB64 + "." + payloadB64

	signatureBytes, err := core.SignBytes([]byte(target), privatekey)
	if err != nil {
		return "", err
	}
	signatureB64 := base64.RawURLEncoding.EncodeToString(signatureBytes)

	return target + "." + signatureB64, nil
}

// Validate checks the token's shape, validity window, and signature
// against the issuer DID embedded in the claims.
func Validate(token string) (Claims, error) {

	var header Header
	var claims Claims

	split := strings.Split(token, ".")
	if len(split) != 3 {
		return claims, fmt.Errorf("invalid token format")
	}

	headerBytes, err := base64.RawURLEncoding.DecodeString(split[0])
	if err != nil {
		return claims, err
	}
	err = json.Unmarshal(headerBytes, &header)
	if err != nil {
		return claims, err
	}

	if header.Type != "JWT" || header.Algorithm != "GCREST" {
		return claims, fmt.Errorf("unsupported token type")
	}

	payloadBytes, err := base64.RawURLEncoding.DecodeString(split[1])
	if err != nil {
		return claims, err
	}
	err = json.Unmarshal(payloadBytes, &claims)
	if err != nil {
		return claims, err
	}

	now := time.Now().Unix()

	if claims.NotBefore != "" {
		nbf, err := strconv.ParseInt(claims.NotBefore, 10, 64)
		if err != nil {
			return claims, err
		}
		if now < nbf {
			return claims, fmt.Errorf("token is not valid yet")
		}
	}

	if claims.ExpirationTime != "" {
		exp, err := strconv.ParseInt(claims.ExpirationTime, 10, 64)
		if err != nil {
			return claims, err
		}
		if exp < now {
			return claims, fmt.Errorf("token is already expired")
		}
	}

	signatureBytes, err := base64.RawURLEncoding.DecodeString(split[2])
	if err != nil {
		return claims, err
	}

	err = core.VerifySignature([]byte(split[0]+"."+split[1]), signatureBytes, claims.Issuer)
	if err != nil {
		return claims, err
	}

	// all checks passed
	return claims, nil
}
