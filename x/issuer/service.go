// Package issuer materializes credentials from resolved access grants.
// Issuance is stateless beyond signing: no record of an issued
// credential is persisted here.
package issuer

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/xid"
	"go.opentelemetry.io/otel"

	"github.com/webgrove/gatecrest/core"
	"github.com/webgrove/gatecrest/x/jwt"
)

var tracer = otel.Tracer("issuer")

type service struct {
	config core.Config
}

func NewService(config core.Config) core.IssuerService {
	return &service{config}
}

func (s *service) Issue(ctx context.Context, grant core.AccessGrant, request core.AuthorizationRequest) (core.Credential, error) {
	ctx, span := tracer.Start(ctx, "Issuer.Service.Issue")
	defer span.End()

	if s.config.PrivateKey == "" {
		err := core.NewErrorIssuance(errors.New("signing key is not configured"))
		span.RecordError(err)
		return core.Credential{}, err
	}

	switch grant.TokenType {
	case core.TokenTypeBearer:
		return s.issueBearer(ctx, grant, request)
	case core.TokenTypeCapability:
		return s.issueDelegation(ctx, grant, request)
	default:
		err := core.NewErrorIssuance(errors.Errorf("unknown token type: %s", grant.TokenType))
		span.RecordError(err)
		return core.Credential{}, err
	}
}

// issueBearer creates a signed, self-contained token. The validity
// window opens after a not-before buffer and the expiry is strictly
// after the not-before.
func (s *service) issueBearer(ctx context.Context, grant core.AccessGrant, request core.AuthorizationRequest) (core.Credential, error) {
	ctx, span := tracer.Start(ctx, "Issuer.Service.IssueBearer")
	defer span.End()

	now := time.Now()
	notBefore := now.Add(s.config.BearerNotBefore())
	expiresAt := now.Add(s.config.BearerLifetime())

	token, err := jwt.Create(jwt.Claims{
		Issuer:         s.config.IssuerDID,
		Subject:        request.SubjectID,
		Audience:       s.config.FQDN,
		Scope:          strings.Join(grant.Claims, " "),
		NotBefore:      strconv.FormatInt(notBefore.Unix(), 10),
		ExpirationTime: strconv.FormatInt(expiresAt.Unix(), 10),
		IssuedAt:       strconv.FormatInt(now.Unix(), 10),
		JWTID:          xid.New().String(),
	}, s.config.PrivateKey)
	if err != nil {
		span.RecordError(err)
		return core.Credential{}, core.NewErrorIssuance(err)
	}

	return core.Credential{
		Type: core.TokenTypeBearer,
		Bearer: &core.IssuedBearerToken{
			Token:     token,
			NotBefore: notBefore,
			ExpiresAt: expiresAt,
			Subject:   request.SubjectID,
		},
	}, nil
}
