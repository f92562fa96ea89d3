package operation

import "testing"

func TestCommandName(t *testing.T) {
	cases := map[string]string{
		"GetAccount":                  "get-account",
		"ListAccounts":                "list-accounts",
		"ResetPersonalPIN":            "reset-personal-pin",
		"BatchUnsuspendUser":          "batch-unsuspend-user",
		"GetPhoneNumberSettings":      "get-phone-number-settings",
		"OutboundEventsHTTPSEndpoint": "outbound-events-https-endpoint",
		"UserIdList":                  "user-id-list",
		"E164PhoneNumber":             "e164-phone-number",
	}
	for in, want := range cases {
		if got := CommandName(in); got != want {
			t.Errorf("CommandName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseImpact(t *testing.T) {
	for _, lvl := range []Impact{ImpactNone, ImpactLow, ImpactMedium, ImpactHigh} {
		got, err := ParseImpact(lvl.String())
		if err != nil || got != lvl {
			t.Fatalf("round trip %v: got %v, %v", lvl, got, err)
		}
	}
	if got, err := ParseImpact(""); err != nil || got != ImpactHigh {
		t.Fatalf("empty level should default to high, got %v, %v", got, err)
	}
	if _, err := ParseImpact("extreme"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
