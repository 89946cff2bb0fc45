package finance

import "github.com/shopspring/decimal"

// Tier is the coarse investment-readiness classification.
type Tier int

const (
	TierLow Tier = iota
	TierMedium
	TierHigh
)

func (t Tier) String() string {
	switch t {
	case TierHigh:
		return "Alto"
	case TierMedium:
		return "Medio"
	default:
		return "Bajo"
	}
}

// MarshalJSON serializes the tier as its display name.
func (t Tier) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// Classification thresholds. Comparisons are strict: a user sitting exactly
// on a threshold falls into the lower tier.
var (
	highNetWorth   = decimal.NewFromInt(50000)
	highCashFlow   = decimal.NewFromInt(1000)
	mediumNetWorth = decimal.NewFromInt(20000)
	mediumCashFlow = decimal.NewFromInt(500)
)

// Classify maps a snapshot to a tier. Total and deterministic.
func Classify(netWorth, monthlyCashFlow decimal.Decimal) Tier {
	switch {
	case netWorth.GreaterThan(highNetWorth) && monthlyCashFlow.GreaterThan(highCashFlow):
		return TierHigh
	case netWorth.GreaterThan(mediumNetWorth) && monthlyCashFlow.GreaterThan(mediumCashFlow):
		return TierMedium
	default:
		return TierLow
	}
}

// Course is a static course recommendation attached to a tier.
type Course struct {
	Title string   `json:"title"`
	Name  string   `json:"name"`
	URL   string   `json:"url"`
	Tips  []string `json:"tips"`
}

// Profile carries the static descriptive copy for an investment tier.
type Profile struct {
	Level       string `json:"level"`
	Description string `json:"description"`
	Course      Course `json:"course"`
}

var investmentProfiles = map[Tier]Profile{
	TierHigh: {
		Level: "Alto (70-100%)",
		Description: "Excelente perfil para inversión en bienes raíces. Tienes la capacidad financiera " +
			"para comenzar a invertir en propiedades generadoras de ingresos pasivos.",
		Course: Course{
			Title: "🚀 Recomendación para tu Perfil Alto",
			Name:  "Mentoría Avanzada en Tiendas Online",
			URL:   "https://landing.carlosdevis.com/mentoria-tienda-online",
			Tips: []string{
				"Estrategias avanzadas de escalamiento",
				"Automatización de procesos",
				"Fuentes alternativas de ingreso",
			},
		},
	},
	TierMedium: {
		Level: "Medio (40-69%)",
		Description: "Buen potencial para inversión en bienes raíces. Considera comenzar con propiedades " +
			"pequeñas o co-inversiones mientras mejoras tu flujo de caja.",
		Course: Course{
			Title: "📈 Recomendación para tu Perfil Medio",
			Name:  "Programa Avanzado en Tiendas Online",
			URL:   "https://landing.carlosdevis.com/cv-avanzado-tienda-online",
			Tips: []string{
				"Modelos de negocio probados",
				"Tácticas de conversión",
				"Fuentes de tráfico escalables",
			},
		},
	},
	TierLow: {
		Level: "Bajo (0-39%)",
		Description: "Necesitas fortalecer tu situación financiera antes de invertir en bienes raíces. " +
			"Enfócate en aumentar ingresos, reducir deudas y ahorrar.",
		Course: Course{
			Title: "📚 Recomendación para tu Perfil Bajo",
			Name:  "Programa Avanzado en Tiendas Online",
			URL:   "https://landing.carlosdevis.com/cv-avanzado-tienda-online",
			Tips: []string{
				"Fundamentos sólidos",
				"Gestión financiera básica",
				"Primeros pasos en digital",
			},
		},
	},
}

// Profile returns the static investment copy for the tier.
func (t Tier) Profile() Profile {
	return investmentProfiles[t]
}

// RetirementAdvice is the retirement-specific copy for a tier. It is a
// parallel policy table over the same thresholds as the investment profile.
type RetirementAdvice struct {
	Recommendations []string `json:"recommendations"`
	Courses         []string `json:"courses"`
}

var retirementAdvice = map[Tier]RetirementAdvice{
	TierHigh: {
		Recommendations: []string{
			"Tienes un excelente perfil para comenzar a invertir en bienes raíces de inmediato.",
			"Considera propiedades generadoras de ingresos pasivos como apartamentos en arriendo o locales comerciales.",
		},
		Courses: []string{"Curso Avanzado de Inversión en Bienes Raíces"},
	},
	TierMedium: {
		Recommendations: []string{
			"Tienes potencial para inversión en bienes raíces, pero necesitas mejorar tu flujo de caja.",
			"Considera comenzar con propiedades pequeñas o co-inversiones.",
		},
		Courses: []string{"Curso Intermedio de Bienes Raíces"},
	},
	TierLow: {
		Recommendations: []string{
			"Necesitas fortalecer tu situación financiera antes de invertir en bienes raíces.",
			"Enfócate en aumentar tus ingresos y reducir deudas.",
		},
		Courses: []string{"Curso Básico de Educación Financiera para Bienes Raíces"},
	},
}

// RetirementAdvice returns the retirement-specific copy for the tier.
func (t Tier) RetirementAdvice() RetirementAdvice {
	return retirementAdvice[t]
}
