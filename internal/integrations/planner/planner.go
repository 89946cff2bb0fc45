// Package planner generates the personalized work plan through the Anthropic
// API. The call is best-effort: any failure (missing key, network, quota)
// yields a fixed fallback message and never blocks report generation.
package planner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/dgraph-io/ristretto"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/jkarlost/calculadora/internal/config"
	"github.com/jkarlost/calculadora/internal/money"
)

// Fallback messages shown in place of a generated plan.
const (
	FallbackUnconfigured = "Servicio de IA no disponible. Configura tu clave de API para habilitar esta función."
	FallbackError        = "No se pudo generar el plan en este momento."
)

const systemPrompt = "Eres un asesor experto en inversión en bienes raíces. Responde en español con enfoque práctico."

// Totals are the four aggregate figures the plan prompt is built from.
type Totals struct {
	MonthlyIncome    decimal.Decimal
	MonthlyExpenses  decimal.Decimal
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
}

// messagesAPI is the slice of the Anthropic client the generator needs.
type messagesAPI interface {
	New(ctx context.Context, body anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// Generator handles integration with the plan-generation service
type Generator struct {
	messages messagesAPI
	model    anthropic.Model
	timeout  time.Duration
	cache    *ristretto.Cache
	log      *logrus.Logger
}

// NewGenerator initializes a new plan generator. When no API key is
// configured the generator stays in degraded mode and always returns the
// unconfigured fallback.
func NewGenerator(cfg *config.Config, log *logrus.Logger) *Generator {
	g := &Generator{
		model:   anthropic.Model(cfg.PlanModel),
		timeout: cfg.PlanTimeout,
		log:     log,
	}
	if cfg.AnthropicKey != "" {
		client := anthropic.NewClient(option.WithAPIKey(cfg.AnthropicKey))
		g.messages = &client.Messages
	}

	// Identical totals produce identical prompts, so cache responses to
	// avoid paying for duplicate generations within the hour.
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10_000,
		MaxCost:     1 << 22,
		BufferItems: 64,
	})
	if err != nil {
		log.Warnf("Plan cache disabled: %v", err)
	} else {
		g.cache = cache
	}
	return g
}

// GeneratePlan requests a free-form action plan for the given totals. It
// always returns text: either the generated plan or a fallback message.
func (g *Generator) GeneratePlan(ctx context.Context, t Totals) string {
	if g.messages == nil {
		return FallbackUnconfigured
	}

	key := cacheKey(t)
	if g.cache != nil {
		if v, ok := g.cache.Get(key); ok {
			if plan, ok := v.(string); ok {
				return plan
			}
		}
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	msg, err := g.messages.New(ctx, anthropic.MessageNewParams{
		Model:       g.model,
		MaxTokens:   2048,
		Temperature: anthropic.Float(0.7),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(t))),
		},
	})
	if err != nil {
		g.log.Errorf("Failed to generate plan: %v", err)
		return FallbackError
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	plan := strings.TrimSpace(b.String())
	if plan == "" {
		g.log.Error("Plan generation returned no text content")
		return FallbackError
	}

	if g.cache != nil {
		g.cache.SetWithTTL(key, plan, int64(len(plan)), time.Hour)
	}
	g.log.Infof("Generated plan (%d chars)", len(plan))
	return plan
}

func cacheKey(t Totals) string {
	return strings.Join([]string{
		t.MonthlyIncome.String(),
		t.MonthlyExpenses.String(),
		t.TotalAssets.String(),
		t.TotalLiabilities.String(),
	}, "|")
}

func buildPrompt(t Totals) string {
	return fmt.Sprintf(`Como experto en bienes raíces y finanzas personales, analiza esta situación:
- Ingresos: %s/mes
- Gastos: %s/mes
- Activos: %s
- Pasivos: %s

Crea un plan detallado para inversión en bienes raíces que incluya:
1. Diagnóstico de la situación actual
2. Estrategias para mejorar flujo de caja
3. Plan de reducción de deudas
4. Recomendaciones de inversión personalizadas
5. Metas a corto, mediano y largo plazo
6. Ejercicios prácticos
7. Recomendaciones de cursos

Usa lenguaje claro y motivador, con ejemplos concretos.
Respuesta en español.`,
		money.Format(t.MonthlyIncome),
		money.Format(t.MonthlyExpenses),
		money.Format(t.TotalAssets),
		money.Format(t.TotalLiabilities),
	)
}
