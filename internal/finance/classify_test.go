package finance

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		netWorth string
		cashFlow string
		want     Tier
	}{
		{"high profile", "60000", "1200", TierHigh},
		{"medium profile", "25000", "600", TierMedium},
		{"low profile", "5000", "100", TierLow},
		{"medium boundary is exclusive", "20000", "500", TierLow},
		{"high boundary is exclusive", "50000", "1000", TierMedium},
		{"just above medium boundary", "20000.01", "500.01", TierMedium},
		{"high net worth alone is not enough", "100000", "900", TierMedium},
		{"high cash flow alone is not enough", "15000", "5000", TierLow},
		{"negative net worth", "-10000", "2000", TierLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(dec(tt.netWorth), dec(tt.cashFlow))
			if got != tt.want {
				t.Errorf("Classify(%s, %s) = %s, want %s", tt.netWorth, tt.cashFlow, got, tt.want)
			}
		})
	}
}

func TestTierString(t *testing.T) {
	if TierHigh.String() != "Alto" || TierMedium.String() != "Medio" || TierLow.String() != "Bajo" {
		t.Errorf("unexpected tier names: %s/%s/%s", TierHigh, TierMedium, TierLow)
	}
}

func TestTierProfileCopyIsComplete(t *testing.T) {
	for _, tier := range []Tier{TierLow, TierMedium, TierHigh} {
		p := tier.Profile()
		if p.Level == "" || p.Description == "" {
			t.Errorf("tier %s has incomplete profile copy", tier)
		}
		if p.Course.Name == "" || p.Course.URL == "" || len(p.Course.Tips) != 3 {
			t.Errorf("tier %s has incomplete course recommendation", tier)
		}

		advice := tier.RetirementAdvice()
		if len(advice.Recommendations) == 0 || len(advice.Courses) == 0 {
			t.Errorf("tier %s has incomplete retirement advice", tier)
		}
	}
}

func TestTierMarshalJSON(t *testing.T) {
	b, err := TierHigh.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"Alto"` {
		t.Errorf("MarshalJSON = %s, want \"Alto\"", b)
	}
}
