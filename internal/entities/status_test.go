package entities

import "testing"

func TestValidStatus(t *testing.T) {
	tests := []struct {
		name     string
		provider Provider
		status   Status
		want     bool
	}{
		{"vipayment accepts waiting", ProviderVipayment, StatusWaiting, true},
		{"vipayment accepts success", ProviderVipayment, StatusSuccess, true},
		{"vipayment rejects completed", ProviderVipayment, StatusCompleted, false},
		{"moogold accepts completed", ProviderMoogold, StatusCompleted, true},
		{"moogold accepts refunded", ProviderMoogold, StatusRefunded, true},
		{"moogold rejects waiting", ProviderMoogold, StatusWaiting, false},
		{"jollymax accepts fail", ProviderJollymax, StatusFail, true},
		{"jollymax rejects failed", ProviderJollymax, StatusFailed, false},
		{"garbage status rejected everywhere", ProviderVipayment, Status("paid"), false},
		{"empty status rejected", ProviderJollymax, Status(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.provider.ValidStatus(tt.status); got != tt.want {
				t.Errorf("ValidStatus(%q, %q) = %v, want %v", tt.provider, tt.status, got, tt.want)
			}
		})
	}
}

func TestInitialStatus(t *testing.T) {
	for _, p := range Providers() {
		t.Run(string(p), func(t *testing.T) {
			initial := p.InitialStatus()
			if !p.ValidStatus(initial) {
				t.Errorf("initial status %q is outside %s vocabulary", initial, p)
			}
			if p.CheckableStatus() != initial {
				t.Errorf("checkable status %q differs from initial %q", p.CheckableStatus(), initial)
			}
		})
	}
}

func TestProviderByCode(t *testing.T) {
	tests := []struct {
		code string
		want Provider
		ok   bool
	}{
		{"VP", ProviderVipayment, true},
		{"MG", ProviderMoogold, true},
		{"JM", ProviderJollymax, true},
		{"XX", "", false},
		{"", "", false},
		{"vp", "", false},
	}

	for _, tt := range tests {
		got, ok := ProviderByCode(tt.code)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ProviderByCode(%q) = (%q, %v), want (%q, %v)", tt.code, got, ok, tt.want, tt.ok)
		}
	}
}
