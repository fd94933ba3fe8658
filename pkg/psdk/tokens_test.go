package psdk

import "testing"

func TestParseTokenPairModernShape(t *testing.T) {
	body := []byte(`{"data":{"accessToken":"A1","refreshToken":"R1"}}`)
	access, refresh, err := ParseTokenPair(body, DefaultTokenFields())
	if err != nil {
		t.Fatalf("ParseTokenPair error: %v", err)
	}
	if access != "A1" || refresh != "R1" {
		t.Fatalf("got access=%q refresh=%q", access, refresh)
	}
}

func TestParseTokenPairLegacyShape(t *testing.T) {
	body := []byte(`{"access_token":"A1","refresh_token":"R1"}`)
	access, refresh, err := ParseTokenPair(body, DefaultTokenFields())
	if err != nil {
		t.Fatalf("ParseTokenPair error: %v", err)
	}
	if access != "A1" || refresh != "R1" {
		t.Fatalf("got access=%q refresh=%q", access, refresh)
	}
}

func TestParseTokenPairAccessOnly(t *testing.T) {
	body := []byte(`{"data":{"accessToken":"A2"}}`)
	access, refresh, err := ParseTokenPair(body, DefaultTokenFields())
	if err != nil {
		t.Fatalf("ParseTokenPair error: %v", err)
	}
	if access != "A2" {
		t.Fatalf("expected A2, got %q", access)
	}
	if refresh != "" {
		t.Fatalf("expected empty refresh, got %q", refresh)
	}
}

func TestParseTokenPairCustomFields(t *testing.T) {
	fields := TokenFields{Access: "token", Refresh: "renewal"}
	body := []byte(`{"data":{"token":"A3","renewal":"R3"}}`)
	access, refresh, err := ParseTokenPair(body, fields)
	if err != nil {
		t.Fatalf("ParseTokenPair error: %v", err)
	}
	if access != "A3" || refresh != "R3" {
		t.Fatalf("got access=%q refresh=%q", access, refresh)
	}
}

func TestParseTokenPairRejectsNonObject(t *testing.T) {
	if _, _, err := ParseTokenPair([]byte(`[]`), DefaultTokenFields()); err == nil {
		t.Fatal("expected error for non-object body")
	}
}
