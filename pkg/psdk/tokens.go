package psdk

import "encoding/json"

// TokenFields names the JSON fields the token endpoints use. Deployments
// differ: the current API nests camelCase fields under "data", older ones
// return flat snake_case fields at the top level. The defaults read the
// modern shape first and fall back to the legacy one.
type TokenFields struct {
	Access        string
	Refresh       string
	LegacyAccess  string
	LegacyRefresh string
}

func DefaultTokenFields() TokenFields {
	return TokenFields{
		Access:        "accessToken",
		Refresh:       "refreshToken",
		LegacyAccess:  "access_token",
		LegacyRefresh: "refresh_token",
	}
}

// ParseTokenPair extracts the access and refresh tokens from a login or
// refresh response body. Either token may be absent (refresh responses often
// carry only a new access token); the caller decides what absence means.
func ParseTokenPair(body []byte, fields TokenFields) (access, refresh string, err error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", "", err
	}

	// Modern shape: {"data": {"accessToken": ..., "refreshToken": ...}}
	if data, ok := raw["data"]; ok {
		var inner map[string]json.RawMessage
		if err := json.Unmarshal(data, &inner); err == nil {
			access = stringField(inner, fields.Access, fields.LegacyAccess)
			refresh = stringField(inner, fields.Refresh, fields.LegacyRefresh)
		}
	}

	// Legacy shape: {"access_token": ..., "refresh_token": ...}
	if access == "" {
		access = stringField(raw, fields.LegacyAccess, fields.Access)
	}
	if refresh == "" {
		refresh = stringField(raw, fields.LegacyRefresh, fields.Refresh)
	}

	return access, refresh, nil
}

func stringField(m map[string]json.RawMessage, names ...string) string {
	for _, name := range names {
		if name == "" {
			continue
		}
		if v, ok := m[name]; ok {
			var s string
			if err := json.Unmarshal(v, &s); err == nil && s != "" {
				return s
			}
		}
	}
	return ""
}
