package services

import (
	"reflect"
	"testing"

	"agencybackend/internal/domain/models"
)

func TestPaymentPlanRoundTrip(t *testing.T) {
	entries := []models.PaymentPlanEntry{
		{
			ID:         "a1",
			FormaPagID: "12",
			Parcelas:   "3",
			Valor:      1500,
			Descricao:  "Cartão de crédito",
		},
		{
			ID:         "b2",
			FormaPagID: "4",
			Parcelas:   "2",
			Valor:      800.5,
			Links: []models.PaymentLink{
				{N: 1, Valor: 500},
				{N: 2, Valor: 300.5},
			},
		},
	}

	notes := "observação livre do agente\n" + EncodePaymentPlan(entries) + "\n" + EncodeShowPlan(true)

	decoded, show := DecodePaymentPlan(notes)
	if !show {
		t.Fatalf("show toggle lost in round trip")
	}
	if !reflect.DeepEqual(entries, decoded) {
		t.Fatalf("round trip mismatch:\n in: %+v\nout: %+v", entries, decoded)
	}
}

func TestDecodePaymentPlanMissingDirective(t *testing.T) {
	entries, show := DecodePaymentPlan("só anotações humanas\nsegunda linha")
	if len(entries) != 0 {
		t.Fatalf("expected empty plan, got %d entries", len(entries))
	}
	if !show {
		t.Fatalf("show must default to true without a toggle line")
	}
}

func TestDecodePaymentPlanBrokenJSON(t *testing.T) {
	notes := "nota\n__PAGAMENTOS__=[{\"id\":\"x\",\"valor\":100"
	entries, _ := DecodePaymentPlan(notes)
	if len(entries) != 0 {
		t.Fatalf("broken directive must decode to empty plan, got %d", len(entries))
	}
}

func TestDecodePaymentPlanShowToggle(t *testing.T) {
	if _, show := DecodePaymentPlan("__MOSTRAR_PAGAMENTOS__=false"); show {
		t.Fatalf("explicit false must hide the plan")
	}
	if _, show := DecodePaymentPlan("__MOSTRAR_PAGAMENTOS__=true"); !show {
		t.Fatalf("explicit true must show the plan")
	}
	// only the exact string "true" enables; anything else is false
	if _, show := DecodePaymentPlan("__MOSTRAR_PAGAMENTOS__=yes"); show {
		t.Fatalf("non-true value must hide the plan")
	}
}

func TestDecodePaymentPlanCoercion(t *testing.T) {
	// legacy writers stored numbers and strings interchangeably
	notes := `__PAGAMENTOS__=[{"formapagid":7,"parcelas":3,"valor":"250,75"}]`
	entries, _ := DecodePaymentPlan(notes)
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	e := entries[0]
	if e.FormaPagID != "7" {
		t.Fatalf("formapagid coercion wrong: %q", e.FormaPagID)
	}
	if e.Parcelas != "3" {
		t.Fatalf("parcelas coercion wrong: %q", e.Parcelas)
	}
	if e.Valor != 250.75 {
		t.Fatalf("valor coercion wrong: %v", e.Valor)
	}
	if e.ID == "" {
		t.Fatalf("missing id must get a generated fallback")
	}
}

func TestDecodePaymentPlanDefaults(t *testing.T) {
	entries, _ := DecodePaymentPlan(`__PAGAMENTOS__=[{}]`)
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Parcelas != "1" {
		t.Fatalf("parcelas default wrong: %q", e.Parcelas)
	}
	if e.Valor != 0 {
		t.Fatalf("valor default wrong: %v", e.Valor)
	}
	if e.FormaPagID != "" {
		t.Fatalf("formapagid default wrong: %q", e.FormaPagID)
	}
}

func TestInstallmentValueRoundsUp(t *testing.T) {
	if got := InstallmentValue(100.00, "3"); got != 33.34 {
		t.Fatalf("expected 33.34, got %v", got)
	}
	if got := InstallmentValue(100.00, "4"); got != 25.00 {
		t.Fatalf("expected 25.00, got %v", got)
	}
	// garbage installment count behaves as a single payment
	if got := InstallmentValue(99.99, "zero"); got != 99.99 {
		t.Fatalf("expected 99.99, got %v", got)
	}
}

func TestSplitLinkColumns(t *testing.T) {
	links := []models.PaymentLink{
		{N: 3, Valor: 30},
		{N: 1, Valor: 10},
		{N: 4, Valor: 40},
		{N: 2, Valor: 20},
	}

	left, right := SplitLinkColumns(links)
	if len(left) != 2 || len(right) != 2 {
		t.Fatalf("column split wrong: %d/%d", len(left), len(right))
	}
	if left[0].N != 1 || right[0].N != 2 || left[1].N != 3 || right[1].N != 4 {
		t.Fatalf("ordering wrong: left=%+v right=%+v", left, right)
	}
	// input must not be reordered in place
	if links[0].N != 3 {
		t.Fatalf("input slice mutated")
	}
}
