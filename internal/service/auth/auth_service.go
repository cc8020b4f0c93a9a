package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/ougirez/rifmis/internal/pkg/constants"
	"github.com/ougirez/rifmis/internal/pkg/utils"
)

// Service resolves the caller identity carried by a signed token. Token issuance
// and session management belong to the external auth service.
type Service struct {
	secret     string
	cookieName string
	tokenTTL   time.Duration
}

func NewService(secret, cookieName string, tokenTTL time.Duration) *Service {
	if cookieName == "" {
		cookieName = constants.CookieKeyAuthToken
	}
	return &Service{secret: secret, cookieName: cookieName, tokenTTL: tokenTTL}
}

// CallerID reads the token from the Authorization bearer header, then from the auth cookie.
func (svc *Service) CallerID(r *http.Request) (string, bool) {
	token := bearerToken(r.Header.Get(constants.HeaderAuthorization))
	if token == "" {
		if cookie, err := r.Cookie(svc.cookieName); err == nil {
			token = cookie.Value
		}
	}
	if token == "" {
		return "", false
	}

	claims, err := utils.ParseAuthToken(svc.secret, token)
	if err != nil {
		return "", false
	}
	return claims.UserID, true
}

func (svc *Service) IssueToken(userID string) (string, error) {
	return utils.GenerateAuthToken(svc.secret, userID, svc.tokenTTL)
}

func bearerToken(header string) string {
	if len(header) < len(constants.BearerPrefix) || !strings.EqualFold(header[:len(constants.BearerPrefix)], constants.BearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(constants.BearerPrefix):])
}
