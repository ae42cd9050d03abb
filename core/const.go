package core

type TokenType string

const (
	TokenTypeCapability TokenType = "capability"
	TokenTypeBearer     TokenType = "bearer"
)

func (t TokenType) IsValid() bool {
	return t == TokenTypeCapability || t == TokenTypeBearer
}

type CriteriaType string

const (
	CriteriaTypeEnvRule CriteriaType = "env-rule"
	CriteriaTypeEasRule CriteriaType = "eas-rule"
)

const (
	AdminIdCtxKey     = "gc-adminId"
	AdminClaimsCtxKey = "gc-adminClaims"
)

// MetadataSpaceKey addresses the target resource identifier inside a
// grant's metadata.
const MetadataSpaceKey = "space"
