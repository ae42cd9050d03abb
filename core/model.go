package core

import (
	"encoding/json"
	"time"
)

// AccessPolicy is the unit of authorization configuration.
// Policies are owned by their tenant's store and are never mutated
// outside of it. seq is assigned by the store's per-tenant
// serialization point; insertion order is priority order.
type AccessPolicy struct {
	ID           string       `json:"id" gorm:"primaryKey;type:text"`
	TenantID     string       `json:"tenantId" gorm:"primaryKey;type:text"`
	Seq          int64        `json:"-" gorm:"index:idx_policy_tenant_seq"`
	CriteriaType CriteriaType `json:"criteriaType" gorm:"type:text"`
	Criteria     string       `json:"criteria" gorm:"type:json"`
	Access       string       `json:"access" gorm:"type:json"`
	CDate        time.Time    `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
}

// Grant decodes the policy's access payload. Stored policies always
// decode cleanly; writes that don't pass validation never reach the store.
func (p AccessPolicy) Grant() (AccessGrant, error) {
	var grant AccessGrant
	err := json.Unmarshal([]byte(p.Access), &grant)
	return grant, err
}

// EnvRuleCriteria is satisfied when the requester is a member of the
// operator-maintained allow-list addressed by WhitelistEnvKey.
type EnvRuleCriteria struct {
	WhitelistEnvKey string `json:"whitelistEnvKey"`
}

// EasRuleCriteria is satisfied when a supplied attestation was issued
// under SchemaID, verifies, and its Field value equals the requester.
type EasRuleCriteria struct {
	SchemaID string `json:"schemaId"`
	Field    string `json:"field"`
}

// AccessGrant is what a matched policy grants.
type AccessGrant struct {
	TokenType TokenType         `json:"tokenType"`
	Claims    []string          `json:"claims"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// AuthorizationRequest is transient and never persisted.
type AuthorizationRequest struct {
	SubjectID string         `json:"subjectId"`
	TokenType TokenType      `json:"tokenType"`
	Context   RequestContext `json:"context,omitempty"`
}

type RequestContext struct {
	Space       string               `json:"space,omitempty"`
	Attestation *AttestationEnvelope `json:"attestation,omitempty"`
}

// AttestationEnvelope carries a third-party attestation document and a
// recoverable secp256k1 signature (hex) over keccak256(document).
type AttestationEnvelope struct {
	Document  string `json:"document"`
	Signature string `json:"signature"`
}

func (e AttestationEnvelope) Decode() (AttestationDocument, error) {
	var doc AttestationDocument
	err := json.Unmarshal([]byte(e.Document), &doc)
	return doc, err
}

// AttestationDocument is the signed portion of an attestation.
// ExpirationTime is unix seconds; zero means no expiry.
type AttestationDocument struct {
	SchemaID       string            `json:"schemaId"`
	Attester       string            `json:"attester"`
	ExpirationTime int64             `json:"expirationTime,omitempty"`
	Data           map[string]string `json:"data"`
}

type VerifyResult struct {
	IsValid bool   `json:"isValid"`
	Error   string `json:"error,omitempty"`
}

// Credential is the issuance result, tagged by token type.
// Exactly one of Delegation / Bearer is set.
type Credential struct {
	Type       TokenType          `json:"type"`
	Delegation *IssuedDelegation  `json:"delegation,omitempty"`
	Bearer     *IssuedBearerToken `json:"bearer,omitempty"`
}

type IssuedDelegation struct {
	Artifact      []byte    `json:"artifact"`
	Length        int       `json:"length"`
	ExpiresAt     time.Time `json:"expiresAt"`
	BoundResource string    `json:"boundResource"`
}

type IssuedBearerToken struct {
	Token     string    `json:"token"`
	NotBefore time.Time `json:"notBefore"`
	ExpiresAt time.Time `json:"expiresAt"`
	Subject   string    `json:"subject"`
}
