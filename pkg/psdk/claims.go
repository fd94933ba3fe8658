package psdk

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserClaims is the decoded payload of an access token. It is parsed without
// signature verification: the server is the verifying party, the client only
// needs the payload for session state and display. Do not use these values
// for security decisions.
type UserClaims struct {
	ID    string
	Email string
	Name  string
	Role  string
	Iss   string
	Iat   int64
	Exp   int64
}

// ParseTokenClaims extracts raw claims from a JWT without verifying its
// signature. Numeric timestamps come back as float64 per the jwt library
// behavior.
func ParseTokenClaims(tokenStr string) (jwt.MapClaims, error) {
	var claims jwt.MapClaims
	parser := new(jwt.Parser)
	_, _, err := parser.ParseUnverified(tokenStr, &claims)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func FromToken(tokenStr string) (*UserClaims, error) {
	claims, err := ParseTokenClaims(tokenStr)
	if err != nil {
		return nil, err
	}
	return FromMapClaims(claims)
}

// FromMapClaims maps raw token claims into a stable UserClaims structure. It
// tolerates both string and numeric forms of the `sub`, `iat`, and `exp`
// claims and normalizes them into strings/int64s.
func FromMapClaims(mc jwt.MapClaims) (*UserClaims, error) {
	uc := &UserClaims{}

	if sub, ok := mc["sub"]; ok {
		switch v := sub.(type) {
		case string:
			uc.ID = v
		case float64:
			uc.ID = strconv.FormatInt(int64(v), 10)
		default:
			uc.ID = fmt.Sprintf("%v", v)
		}
	}

	if email, ok := mc["email"].(string); ok {
		uc.Email = email
	}
	if name, ok := mc["name"].(string); ok {
		uc.Name = name
	}
	if role, ok := mc["role"].(string); ok {
		uc.Role = role
	}
	if iss, ok := mc["iss"].(string); ok {
		uc.Iss = iss
	}

	if iat, ok := mc["iat"]; ok {
		switch v := iat.(type) {
		case float64:
			uc.Iat = int64(v)
		case int64:
			uc.Iat = v
		}
	}

	if exp, ok := mc["exp"]; ok {
		switch v := exp.(type) {
		case float64:
			uc.Exp = int64(v)
		case int64:
			uc.Exp = v
		}
	}

	return uc, nil
}

// ToClaims converts a UserClaims into jwt.MapClaims suitable for signing by
// the server. Empty fields are omitted so tokens stay compact. Numeric
// timestamp fields must be set by the caller (iat/exp) in unix seconds.
func ToClaims(uc *UserClaims) jwt.MapClaims {
	mc := jwt.MapClaims{}
	if uc.ID != "" {
		mc["sub"] = uc.ID
	}
	if uc.Email != "" {
		mc["email"] = uc.Email
	}
	if uc.Name != "" {
		mc["name"] = uc.Name
	}
	if uc.Role != "" {
		mc["role"] = uc.Role
	}
	if uc.Iss != "" {
		mc["iss"] = uc.Iss
	}
	if uc.Iat != 0 {
		mc["iat"] = uc.Iat
	}
	if uc.Exp != 0 {
		mc["exp"] = uc.Exp
	}
	return mc
}

// ExpiredAt reports whether the claims' embedded expiry has passed at the
// given instant. A token whose expiry equals "now" counts as expired. Tokens
// without an exp claim never expire locally.
func (uc *UserClaims) ExpiredAt(now time.Time) bool {
	if uc.Exp == 0 {
		return false
	}
	return !now.Before(time.Unix(uc.Exp, 0))
}

// IsTokenExpired parses the token without verification and reports whether it
// is expired or within the provided skew window. Unparsable tokens count as
// expired.
func IsTokenExpired(token string, skew time.Duration) (bool, error) {
	if token == "" {
		return true, nil
	}
	uc, err := FromToken(token)
	if err != nil {
		return true, err
	}
	return uc.ExpiredAt(time.Now().Add(skew)), nil
}
